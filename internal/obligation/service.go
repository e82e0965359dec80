package obligation

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
)

// Repository defines the data access methods for obligations. Every method
// targets the table selected by the kind.
type Repository interface {
	Create(o *Obligation) error
	GetByID(kind Kind, id int64) (*Obligation, error)
	UpdateStatus(kind Kind, id int64, status Status) error
	ListAll(kind Kind) ([]*Obligation, error)
	SumByStatus(kind Kind, status Status, currency money.Currency) (decimal.Decimal, error)
}

// Service handles the receivable/payable lifecycle.
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

// Record persists a new pending obligation.
func (s *Service) Record(dto RecordObligationDTO) (*Obligation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("obligation validation failed", "error", err, "kind", dto.Kind)
		return nil, err
	}

	due, _ := time.Parse("2006-01-02", dto.DueDate)

	o := &Obligation{
		Kind:         dto.Kind,
		Counterpart:  dto.Counterpart,
		Amount:       dto.Amount,
		Currency:     money.Currency(dto.Currency),
		DueDate:      due,
		Status:       StatusPending,
		Description:  dto.Description,
		RegisteredAt: time.Now(),
	}

	if err := s.repo.Create(o); err != nil {
		s.logger.Error("failed to create obligation", "error", err, "kind", dto.Kind)
		return nil, err
	}

	s.logger.Info("obligation recorded",
		"obligation_id", o.ID,
		"kind", o.Kind,
		"counterpart", o.Counterpart,
		"amount", o.Amount,
		"due_date", dto.DueDate)

	return o, nil
}

// MarkPaid settles an obligation. Marking an already-paid obligation paid
// again is a silent no-op with identical persisted state.
func (s *Service) MarkPaid(kind Kind, id int64) error {
	o, err := s.repo.GetByID(kind, id)
	if err != nil {
		s.logger.Error("obligation not found for mark paid", "error", err, "kind", kind, "obligation_id", id)
		return errors.ErrObligationNotFound
	}

	if o.IsPaid() {
		s.logger.Debug("obligation already paid", "kind", kind, "obligation_id", id)
		return nil
	}

	if err := s.repo.UpdateStatus(kind, id, StatusPaid); err != nil {
		s.logger.Error("failed to mark obligation paid", "error", err, "kind", kind, "obligation_id", id)
		return err
	}

	s.logger.Info("obligation marked paid", "kind", kind, "obligation_id", id, "amount", o.Amount)
	return nil
}

// ListAll returns every obligation of the kind, due date ascending, with no
// status filter.
func (s *Service) ListAll(kind Kind) ([]*Obligation, error) {
	return s.repo.ListAll(kind)
}

// SumPaid totals the settled obligations of a kind in one currency; the
// general balance adds paid receivables and subtracts paid payables.
func (s *Service) SumPaid(kind Kind, currency money.Currency) (decimal.Decimal, error) {
	return s.repo.SumByStatus(kind, StatusPaid, currency)
}
