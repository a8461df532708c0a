package tariff

// DefaultVolumetricFactor is the divisor applied to L×W×H when a tariff does
// not configure one.
const DefaultVolumetricFactor = 5000

// Tariff prices the route between two zones. Routes are directed: the
// (origin, destination) pair is unique but not symmetric.
type Tariff struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OriginID uint `gorm:"not null;uniqueIndex:idx_tariffs_route" json:"origen_id"`
	Origin   Zone `gorm:"foreignKey:OriginID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"origen"`

	DestinationID uint `gorm:"not null;uniqueIndex:idx_tariffs_route" json:"destino_id"`
	Destination   Zone `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"destino"`

	VolumetricFactor int     `gorm:"not null;default:5000" json:"factor_volumetrico"`
	BaseCost         float64 `gorm:"type:decimal(10,2);not null" json:"costo_base"`
	WeightLimitKg    float64 `gorm:"type:decimal(10,2);not null;default:5" json:"limite_peso_kg"`
	CostPerExtraKg   float64 `gorm:"type:decimal(10,2);not null" json:"costo_por_kg_extra"`
}

// TableName sets the table name for the Tariff model
func (Tariff) TableName() string {
	return "tariffs"
}
