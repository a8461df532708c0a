package support

import (
	"fmt"

	"transvert-logistics/types"

	supportModel "transvert-logistics/models/support"
)

// CreateTicketRequest opens a support ticket.
type CreateTicketRequest struct {
	Subject      string `json:"asunto" validate:"required,max=200"`
	Message      string `json:"mensaje" validate:"required"`
	ContactEmail string `json:"correo" validate:"omitempty,email"`
	Priority     string `json:"prioridad" validate:"omitempty"`
}

func (r CreateTicketRequest) Validate() error {
	if r.Subject == "" || r.Message == "" {
		return fmt.Errorf("asunto and mensaje are required")
	}
	if r.Priority != "" && !supportModel.TicketPriority(r.Priority).IsValid() {
		return fmt.Errorf("prioridad must be one of Baja, Media, Alta")
	}
	return types.ValidateStruct(r)
}

// RespondRequest appends a staff response and/or moves the ticket status.
type RespondRequest struct {
	Message string `json:"mensaje"`
	Status  string `json:"estado"`
}

func (r RespondRequest) Validate() error {
	if r.Message == "" && r.Status == "" {
		return fmt.Errorf("mensaje or estado is required")
	}
	if r.Status != "" && !supportModel.TicketStatus(r.Status).IsValid() {
		return fmt.Errorf("estado must be one of Pendiente, En proceso, Respondido")
	}
	return nil
}
