package sqlite

import (
	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	"gorm.io/gorm"
)

// MovementRepository implements the movement.Repository interface over the
// shared database handle. Every method runs inside the handle lock.
type MovementRepository struct {
	h *database.Handle
}

func NewMovementRepository(h *database.Handle) movement.Repository {
	return &MovementRepository{h: h}
}

func (r *MovementRepository) Create(m *movement.Movement) error {
	r.h.Lock()
	defer r.h.Unlock()
	return r.h.DB().Create(m).Error
}

func (r *MovementRepository) GetByID(id int64) (*movement.Movement, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var m movement.Movement
	err := r.h.DB().Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMovementNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepository) UpdateStatus(id int64, status movement.Status) error {
	r.h.Lock()
	defer r.h.Unlock()

	return r.h.DB().Model(&movement.Movement{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *MovementRepository) Delete(id int64) error {
	r.h.Lock()
	defer r.h.Unlock()

	return r.h.DB().Where("id = ?", id).Delete(&movement.Movement{}).Error
}

func (r *MovementRepository) ListByStatus(status movement.Status) ([]*movement.Movement, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var movements []*movement.Movement
	err := r.h.DB().Where("status = ?", status).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

func (r *MovementRepository) ListAll() ([]*movement.Movement, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var movements []*movement.Movement
	err := r.h.DB().Order("created_at DESC").Find(&movements).Error
	return movements, err
}

// ListActiveFiltered feeds the balance engine: active rows narrowed by the
// optional currency, bank and calendar-date filters. The bank filter is
// paired with the digital channel so cash rows never leak into bank
// aggregates. The date window is applied in Go: sqlite's date() normalizes
// timestamps to UTC, which would shift rows near midnight into the wrong
// day.
func (r *MovementRepository) ListActiveFiltered(f movement.Filter) ([]*movement.Movement, error) {
	r.h.Lock()
	defer r.h.Unlock()

	q := r.h.DB().Where("status = ?", movement.StatusActive)
	if f.Currency != nil {
		q = q.Where("currency = ?", *f.Currency)
	}
	if f.Bank != nil {
		q = q.Where("channel = ? AND bank = ?", movement.ChannelDigital, *f.Bank)
	}

	var movements []*movement.Movement
	if err := q.Order("created_at DESC").Find(&movements).Error; err != nil {
		return nil, err
	}

	if f.Since == nil {
		return movements, nil
	}
	matching := movements[:0]
	for _, m := range movements {
		if f.SinceIncludes(m.CreatedAt) {
			matching = append(matching, m)
		}
	}
	return matching, nil
}
