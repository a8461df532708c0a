package support

import (
	"time"

	"transvert-logistics/models/user"
)

// Response is a staff reply attached to a ticket.
type Response struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TicketID uint    `gorm:"not null;index" json:"ticket_id"`
	Ticket   *Ticket `gorm:"foreignKey:TicketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	UserID uint       `gorm:"not null" json:"usuario_id"`
	User   *user.User `gorm:"foreignKey:UserID" json:"usuario,omitempty"`

	Message string `gorm:"type:text;not null" json:"mensaje"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha"`
}

// TableName sets the table name for the Response model
func (Response) TableName() string {
	return "support_responses"
}
