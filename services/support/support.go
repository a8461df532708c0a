package support

import (
	"errors"
	"fmt"

	"transvert-logistics/logger"
	"transvert-logistics/models/support"

	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrMissingFields  = errors.New("subject and message are required")
)

// Service handles the support ticket workflow: creation, staff responses and
// status progression.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// CreateTicket persists a new ticket. Subject and message are mandatory;
// priority falls back to Media when absent.
func (s *Service) CreateTicket(userID *uint, subject, message, contactEmail string, priority support.TicketPriority) (*support.Ticket, error) {
	if subject == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !priority.IsValid() {
		priority = support.PriorityMedium
	}

	ticket := support.Ticket{
		UserID:       userID,
		Subject:      subject,
		Description:  message,
		ContactEmail: optional(contactEmail),
		Priority:     priority,
		Status:       support.TicketPending,
	}

	if err := s.DB.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	logger.Success(fmt.Sprintf("Support ticket #%d created", ticket.ID))
	return &ticket, nil
}

// Respond appends a response when a message is supplied and optionally moves
// the ticket status, both in the same operation.
func (s *Service) Respond(ticketID, responderID uint, message string, status support.TicketStatus) (*support.Ticket, error) {
	var ticket support.Ticket
	if err := s.DB.First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("ticket lookup failed: %w", err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if message != "" {
			response := support.Response{
				TicketID: ticket.ID,
				UserID:   responderID,
				Message:  message,
			}
			if err := tx.Create(&response).Error; err != nil {
				return fmt.Errorf("failed to create response: %w", err)
			}
		}

		if status.IsValid() && status != ticket.Status {
			if err := tx.Model(&ticket).Update("status", status).Error; err != nil {
				return fmt.Errorf("failed to update ticket status: %w", err)
			}
			ticket.Status = status
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// List returns all tickets newest first, optionally filtered by status.
func (s *Service) List(status string) ([]support.Ticket, error) {
	query := s.DB.Preload("Responses").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []support.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("ticket listing failed: %w", err)
	}
	return tickets, nil
}

// ListByUser returns the tickets a user opened, newest first.
func (s *Service) ListByUser(userID uint) ([]support.Ticket, error) {
	var tickets []support.Ticket
	err := s.DB.Preload("Responses").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("ticket listing failed: %w", err)
	}
	return tickets, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
