package shipment

import (
	"time"

	"transvert-logistics/models/user"
)

// TraceEntry is one immutable audit record of a shipment's status change.
// Entries are append-only and ordered by timestamp ascending; the first entry
// of a shipment has a nil previous status.
type TraceEntry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ShipmentID uint      `gorm:"not null;index" json:"envio_id"`
	Shipment   *Shipment `gorm:"foreignKey:ShipmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	PreviousStatus *Status `gorm:"type:varchar(50)" json:"estado_anterior,omitempty"`
	NewStatus      Status  `gorm:"type:varchar(50);not null" json:"estado_nuevo"`
	Description    string  `gorm:"type:text;not null" json:"descripcion"`
	Location       string  `gorm:"type:varchar(100);not null" json:"ubicacion"`

	UserID *uint      `gorm:"index" json:"usuario_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"fecha_hora"`
}

// TableName sets the table name for the TraceEntry model
func (TraceEntry) TableName() string {
	return "shipment_traces"
}
