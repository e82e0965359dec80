package sqlite

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
)

// ObligationRepository implements obligation.Repository over the two
// parallel tables, selected per call by the kind.
type ObligationRepository struct {
	h *database.Handle
}

func NewObligationRepository(h *database.Handle) obligation.Repository {
	return &ObligationRepository{h: h}
}

func (r *ObligationRepository) Create(o *obligation.Obligation) error {
	r.h.Lock()
	defer r.h.Unlock()
	return r.h.DB().Table(o.Kind.TableName()).Create(o).Error
}

func (r *ObligationRepository) GetByID(kind obligation.Kind, id int64) (*obligation.Obligation, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var o obligation.Obligation
	err := r.h.DB().Table(kind.TableName()).Where("id = ?", id).First(&o).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrObligationNotFound
		}
		return nil, err
	}
	o.Kind = kind
	return &o, nil
}

func (r *ObligationRepository) UpdateStatus(kind obligation.Kind, id int64, status obligation.Status) error {
	r.h.Lock()
	defer r.h.Unlock()

	return r.h.DB().Table(kind.TableName()).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ObligationRepository) ListAll(kind obligation.Kind) ([]*obligation.Obligation, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var obligations []*obligation.Obligation
	err := r.h.DB().Table(kind.TableName()).
		Order("due_date ASC").
		Find(&obligations).Error
	if err != nil {
		return nil, err
	}
	for _, o := range obligations {
		o.Kind = kind
	}
	return obligations, nil
}

// SumByStatus folds amounts in Go with decimal arithmetic; sqlite SUM over
// text-stored decimals would silently fall back to floats.
func (r *ObligationRepository) SumByStatus(kind obligation.Kind, status obligation.Status, currency money.Currency) (decimal.Decimal, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var amounts []decimal.Decimal
	err := r.h.DB().Table(kind.TableName()).
		Where("status = ? AND currency = ?", status, currency).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}
