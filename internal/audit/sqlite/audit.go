package sqlite

import (
	"github.com/frahmantamala/cashbook-management/internal/audit"
	"github.com/frahmantamala/cashbook-management/internal/database"
)

// AuditRepository implements the audit.Repository interface over the shared
// database handle.
type AuditRepository struct {
	h *database.Handle
}

func NewAuditRepository(h *database.Handle) audit.Repository {
	return &AuditRepository{h: h}
}

func (r *AuditRepository) Create(e *audit.Entry) error {
	r.h.Lock()
	defer r.h.Unlock()
	return r.h.DB().Create(e).Error
}

func (r *AuditRepository) ListRecent(limit int) ([]*audit.Entry, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var entries []*audit.Entry
	err := r.h.DB().Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
