package lifecycle

import (
	"errors"
	"fmt"

	"transvert-logistics/logger"
	"transvert-logistics/models/shipment"
	"transvert-logistics/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Trace descriptions for the implicit creation transition.
const (
	CreatedByUserDescription = "Envío creado por el usuario."
	CreatedViaAPIDescription = "Envío creado vía API."
	DefaultTransitionPlace   = "Centro de Distribución"
)

// Notifier is the side channel informed after a committed status change.
// Dispatch must never fail the transition that triggered it.
type Notifier interface {
	Dispatch(env shipment.Shipment, entry shipment.TraceEntry)
}

// Service owns the shipment entity and its ordered state transitions. Every
// transition appends exactly one trace entry and both writes share one
// transaction.
type Service struct {
	DB       *gorm.DB
	Notifier Notifier

	// StrictTransitions enforces the lifecycle graph instead of the
	// historical allow-anything behavior.
	StrictTransitions bool
}

func NewService(db *gorm.DB, notifier Notifier, strictTransitions bool) *Service {
	return &Service{
		DB:                db,
		Notifier:          notifier,
		StrictTransitions: strictTransitions,
	}
}

// CreateParams is the validated intake data for a new shipment.
type CreateParams struct {
	SenderName     string
	SenderPhone    string
	SenderEmail    string
	RecipientName  string
	RecipientPhone string
	RecipientEmail string

	Type       string
	Weight     float64
	Dimensions string

	OriginAddress      string
	DestinationAddress string

	// UserID is nil for the unauthenticated API intake path.
	UserID *uint
}

// Create persists the shipment with status Creado together with its first
// trace entry. Either both records exist afterwards or neither does.
func (s *Service) Create(params CreateParams) (*shipment.Shipment, error) {
	description := CreatedViaAPIDescription
	if params.UserID != nil {
		description = CreatedByUserDescription
	}

	env := shipment.Shipment{
		TrackingCode:       utils.GenerateTrackingCode(),
		SenderName:         params.SenderName,
		SenderPhone:        params.SenderPhone,
		SenderEmail:        optional(params.SenderEmail),
		RecipientName:      params.RecipientName,
		RecipientPhone:     params.RecipientPhone,
		RecipientEmail:     optional(params.RecipientEmail),
		Type:               params.Type,
		Weight:             params.Weight,
		Dimensions:         optional(params.Dimensions),
		OriginAddress:      params.OriginAddress,
		DestinationAddress: params.DestinationAddress,
		Status:             shipment.StatusCreated,
		UserID:             params.UserID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&env).Error; err != nil {
			return fmt.Errorf("failed to create shipment: %w", err)
		}

		entry := shipment.TraceEntry{
			ShipmentID:     env.ID,
			PreviousStatus: nil,
			NewStatus:      shipment.StatusCreated,
			Description:    description,
			Location:       env.OriginAddress,
			UserID:         params.UserID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create trace entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Shipment created with tracking code %s", env.TrackingCode))
	return &env, nil
}

// Transition records the shipment's current status as the previous status,
// appends a trace entry for the target status and updates the shipment, all
// under a row lock so concurrent transitions keep the trace chain consistent.
// Notification dispatch happens after the commit and never rolls it back.
func (s *Service) Transition(shipmentID uint, target shipment.Status, location, detail string, actorID *uint) (*shipment.TraceEntry, error) {
	if location == "" {
		location = DefaultTransitionPlace
	}
	if detail == "" {
		detail = fmt.Sprintf("Estado actualizado a %s.", target)
	}

	var env shipment.Shipment
	var entry shipment.TraceEntry

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.lockedFirst(tx, &env, shipmentID); err != nil {
			return err
		}

		if s.StrictTransitions && !env.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, env.Status, target)
		}

		previous := env.Status
		entry = shipment.TraceEntry{
			ShipmentID:     env.ID,
			PreviousStatus: &previous,
			NewStatus:      target,
			Description:    detail,
			Location:       location,
			UserID:         actorID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create trace entry: %w", err)
		}

		if err := tx.Model(&shipment.Shipment{}).Where("id = ?", env.ID).
			Update("status", target).Error; err != nil {
			return fmt.Errorf("failed to update shipment status: %w", err)
		}
		env.Status = target

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Shipment %s moved to %s", env.TrackingCode, target))

	if s.Notifier != nil {
		envCopy := env
		entryCopy := entry
		go s.Notifier.Dispatch(envCopy, entryCopy)
	}

	return &entry, nil
}

// Track resolves a shipment by tracking code together with its trace entries
// ordered oldest first. Public, unauthenticated lookup.
func (s *Service) Track(trackingCode string) (*shipment.Shipment, []shipment.TraceEntry, error) {
	var env shipment.Shipment
	err := s.DB.Where("tracking_code = ?", trackingCode).First(&env).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrShipmentNotFound
		}
		return nil, nil, fmt.Errorf("shipment lookup failed: %w", err)
	}

	var traces []shipment.TraceEntry
	err = s.DB.Where("shipment_id = ?", env.ID).Order("created_at ASC, id ASC").Find(&traces).Error
	if err != nil {
		return nil, nil, fmt.Errorf("trace lookup failed: %w", err)
	}

	return &env, traces, nil
}

// Get loads a shipment by primary key.
func (s *Service) Get(id uint) (*shipment.Shipment, error) {
	var env shipment.Shipment
	if err := s.DB.First(&env, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("shipment lookup failed: %w", err)
	}
	return &env, nil
}

// List returns all shipments newest first, optionally filtered by status.
func (s *Service) List(status string) ([]shipment.Shipment, error) {
	query := s.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var envs []shipment.Shipment
	if err := query.Find(&envs).Error; err != nil {
		return nil, fmt.Errorf("shipment listing failed: %w", err)
	}
	return envs, nil
}

// ListByUser returns the shipments owned by a user, newest first.
func (s *Service) ListByUser(userID uint) ([]shipment.Shipment, error) {
	var envs []shipment.Shipment
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&envs).Error
	if err != nil {
		return nil, fmt.Errorf("shipment listing failed: %w", err)
	}
	return envs, nil
}

// lockedFirst loads the shipment under SELECT ... FOR UPDATE where the
// dialect supports it. SQLite serializes writers anyway and rejects the
// clause.
func (s *Service) lockedFirst(tx *gorm.DB, env *shipment.Shipment, id uint) error {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(env, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipmentNotFound
		}
		return fmt.Errorf("shipment lookup failed: %w", err)
	}
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
