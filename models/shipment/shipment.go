package shipment

import (
	"time"

	"transvert-logistics/models/user"
)

// Shipment represents a parcel tracked end to end by its unique tracking code.
type Shipment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// TrackingCode is immutable after creation.
	TrackingCode string `gorm:"type:varchar(20);not null;unique" json:"numero_guia"`

	SenderName  string  `gorm:"type:varchar(100);not null" json:"remitente_nombre"`
	SenderPhone string  `gorm:"type:varchar(20);not null" json:"remitente_telefono"`
	SenderEmail *string `gorm:"type:varchar(255)" json:"remitente_email,omitempty"`

	RecipientName  string  `gorm:"type:varchar(100);not null" json:"destinatario_nombre"`
	RecipientPhone string  `gorm:"type:varchar(20);not null" json:"destinatario_telefono"`
	RecipientEmail *string `gorm:"type:varchar(255)" json:"destinatario_email,omitempty"`

	Type       string  `gorm:"type:varchar(20);not null" json:"tipo_envio"`
	Weight     float64 `gorm:"type:decimal(10,2);not null" json:"peso"`
	Dimensions *string `gorm:"type:varchar(100)" json:"dimensiones,omitempty"`

	OriginAddress      string `gorm:"type:varchar(200);not null" json:"direccion_origen"`
	DestinationAddress string `gorm:"type:varchar(200);not null" json:"direccion_destino"`

	Status Status `gorm:"type:varchar(20);not null;index" json:"estado"`

	// Nullable so the shipment survives deletion of its owning user.
	UserID *uint      `gorm:"index" json:"usuario_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"usuario,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"fecha_creado"`

	Traces []TraceEntry `gorm:"foreignKey:ShipmentID" json:"trazas,omitempty"`
}

// TableName sets the table name for the Shipment model
func (Shipment) TableName() string {
	return "shipments"
}
