package support

import (
	"time"

	"transvert-logistics/models/user"
)

// TicketPriority is the urgency a customer assigns to a ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Baja"
	PriorityMedium TicketPriority = "Media"
	PriorityHigh   TicketPriority = "Alta"
)

func (p TicketPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// TicketStatus is the staff-side progression state of a ticket.
type TicketStatus string

const (
	TicketPending    TicketStatus = "Pendiente"
	TicketInProgress TicketStatus = "En proceso"
	TicketAnswered   TicketStatus = "Respondido"
)

func (s TicketStatus) IsValid() bool {
	return s == TicketPending || s == TicketInProgress || s == TicketAnswered
}

// Ticket is a customer support request.
type Ticket struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID *uint      `gorm:"index" json:"usuario_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"usuario,omitempty"`

	Subject      string  `gorm:"type:varchar(200);not null" json:"asunto"`
	Description  string  `gorm:"type:text;not null" json:"descripcion"`
	ContactEmail *string `gorm:"type:varchar(255)" json:"correo,omitempty"`

	Priority TicketPriority `gorm:"type:varchar(10);not null;default:'Media'" json:"prioridad"`
	Status   TicketStatus   `gorm:"type:varchar(20);not null;default:'Pendiente';index" json:"estado"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"fecha"`

	Responses []Response `gorm:"foreignKey:TicketID" json:"respuestas,omitempty"`
}

// TableName sets the table name for the Ticket model
func (Ticket) TableName() string {
	return "support_tickets"
}
