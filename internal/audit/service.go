package audit

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for audit entries.
type Repository interface {
	Create(e *Entry) error
	ListRecent(limit int) ([]*Entry, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Append writes one audit entry. It is a pure insert with no read path in
// the business logic.
func (s *Service) Append(username string, action Action, table string, recordID int64, description string) error {
	e := &Entry{
		Username:    username,
		Action:      action,
		Table:       table,
		RecordID:    recordID,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to append audit entry",
			"error", err,
			"username", username,
			"action", action,
			"table", table,
			"record_id", recordID)
		return err
	}

	return nil
}

// ListRecent returns the newest entries for the display-only history view.
func (s *Service) ListRecent(limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 1000
	}
	return s.repo.ListRecent(limit)
}
