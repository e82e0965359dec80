package movement

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/events"
	"github.com/frahmantamala/cashbook-management/internal/user"
)

// Repository defines the data access methods for movements.
type Repository interface {
	Create(m *Movement) error
	GetByID(id int64) (*Movement, error)
	UpdateStatus(id int64, status Status) error
	Delete(id int64) error
	ListByStatus(status Status) ([]*Movement, error)
	ListAll() ([]*Movement, error)
	ListActiveFiltered(f Filter) ([]*Movement, error)
}

// Service handles the ledger entry lifecycle. Every mutation publishes its
// event synchronously so the audit trail is appended inside the same call.
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// Record persists a new active movement owned by the acting user. The
// creation timestamp defaults to now unless the caller backdates it.
func (s *Service) Record(actor *user.User, dto RecordMovementDTO) (*Movement, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("movement validation failed", "error", err, "username", actor.Username)
		return nil, err
	}

	createdAt := time.Now()
	if dto.OccurredAt != nil {
		createdAt = *dto.OccurredAt
	}

	bank := dto.Bank
	if bank == "" {
		bank = BankNone
	}

	m := &Movement{
		Username:    actor.Username,
		Direction:   dto.Direction,
		Amount:      dto.Amount,
		Currency:    dto.Currency,
		Channel:     dto.Channel,
		Bank:        bank,
		Description: dto.Description,
		Status:      StatusActive,
		CreatedAt:   createdAt,
	}

	if err := s.repo.Create(m); err != nil {
		s.logger.Error("failed to create movement", "error", err, "username", actor.Username)
		return nil, err
	}

	s.publish(events.EventMovementRecorded, actor.Username, m.ID, dto.Description)

	s.logger.Info("movement recorded",
		"movement_id", m.ID,
		"username", actor.Username,
		"direction", m.Direction,
		"amount", m.Amount,
		"currency", m.Currency)

	return m, nil
}

// SoftDelete moves a movement into the trash view. Master only.
func (s *Service) SoftDelete(id int64, actor *user.User) error {
	if !actor.IsMaster() {
		s.logger.Warn("soft delete denied", "movement_id", id, "username", actor.Username)
		return internal.ErrPermissionDenied
	}

	if _, err := s.repo.GetByID(id); err != nil {
		s.logger.Error("movement not found for delete", "error", err, "movement_id", id)
		return internal.ErrMovementNotFound
	}

	if err := s.repo.UpdateStatus(id, StatusDeleted); err != nil {
		s.logger.Error("failed to soft delete movement", "error", err, "movement_id", id)
		return err
	}

	s.publish(events.EventMovementDeleted, actor.Username, id, "moved to trash")
	s.logger.Info("movement soft deleted", "movement_id", id, "username", actor.Username)
	return nil
}

// Restore brings a trashed movement back into the active ledger, restoring
// its balance contribution. Master only, for symmetry with purge.
func (s *Service) Restore(id int64, actor *user.User) error {
	if !actor.IsMaster() {
		s.logger.Warn("restore denied", "movement_id", id, "username", actor.Username)
		return internal.ErrPermissionDenied
	}

	m, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("movement not found for restore", "error", err, "movement_id", id)
		return internal.ErrMovementNotFound
	}
	if m.Status != StatusDeleted {
		s.logger.Warn("restore rejected: movement not in trash", "movement_id", id, "status", m.Status)
		return internal.ErrMovementNotTrashed
	}

	if err := s.repo.UpdateStatus(id, StatusActive); err != nil {
		s.logger.Error("failed to restore movement", "error", err, "movement_id", id)
		return err
	}

	s.publish(events.EventMovementRestored, actor.Username, id, "restored from trash")
	s.logger.Info("movement restored", "movement_id", id, "username", actor.Username)
	return nil
}

// Purge removes a movement row for good. Only trashed rows can be purged,
// master only.
func (s *Service) Purge(id int64, actor *user.User) error {
	if !actor.IsMaster() {
		s.logger.Warn("purge denied", "movement_id", id, "username", actor.Username)
		return internal.ErrPermissionDenied
	}

	m, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("movement not found for purge", "error", err, "movement_id", id)
		return internal.ErrMovementNotFound
	}
	if m.Status != StatusDeleted {
		s.logger.Warn("purge rejected: movement not in trash", "movement_id", id, "status", m.Status)
		return internal.ErrMovementNotTrashed
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to purge movement", "error", err, "movement_id", id)
		return err
	}

	s.publish(events.EventMovementPurged, actor.Username, id, "purged from trash")
	s.logger.Info("movement purged", "movement_id", id, "username", actor.Username)
	return nil
}

// ListActive returns the visible ledger, newest first.
func (s *Service) ListActive() ([]*Movement, error) {
	return s.repo.ListByStatus(StatusActive)
}

// ListTrash returns soft-deleted movements awaiting restore or purge.
func (s *Service) ListTrash() ([]*Movement, error) {
	return s.repo.ListByStatus(StatusDeleted)
}

// ListAll returns every row including trashed ones.
func (s *Service) ListAll() ([]*Movement, error) {
	return s.repo.ListAll()
}

func (s *Service) publish(eventType, username string, movementID int64, description string) {
	if s.bus == nil {
		return
	}
	// The acting username travels in the context as well as the payload, so
	// subscribers that never unpack the payload still know who acted.
	ctx := internal.ContextWithUsername(context.Background(), username)
	event := events.MovementEvent(eventType, username, movementID, description)
	if err := s.bus.PublishSync(ctx, event); err != nil {
		// Audit trouble is logged, never propagated to the ledger caller.
		s.logger.Error("failed to publish movement event",
			"event_type", eventType,
			"movement_id", movementID,
			"error", err)
	}
}
