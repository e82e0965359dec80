package obligation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal/core/money"
)

// Kind separates the two obligation books: receivables owed by clients and
// payables owed to suppliers. They share one model and two parallel tables.
type Kind string

const (
	KindReceivable Kind = "receivable"
	KindPayable    Kind = "payable"
)

func (k Kind) Valid() bool {
	return k == KindReceivable || k == KindPayable
}

// TableName maps a kind to its storage table.
func (k Kind) TableName() string {
	if k == KindPayable {
		return "payables"
	}
	return "receivables"
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	// StatusOverdue exists in the schema but is never persisted; overdue is
	// derived from the due date, see EffectiveStatus.
	StatusOverdue Status = "overdue"
)

type Obligation struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	Kind         Kind            `json:"kind" gorm:"-"`
	Counterpart  string          `json:"counterpart" gorm:"not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:text;not null"`
	Currency     money.Currency  `json:"currency" gorm:"not null"`
	DueDate      time.Time       `json:"due_date" gorm:"column:due_date;type:date;not null"`
	Status       Status          `json:"status" gorm:"not null;default:pending"`
	Description  string          `json:"description"`
	RegisteredAt time.Time       `json:"registered_at" gorm:"column:registered_at"`
}

func (o *Obligation) IsPaid() bool {
	return o.Status == StatusPaid
}

// EffectiveStatus reports the status as displayed: a pending obligation past
// its due date shows as overdue without the stored row ever changing.
func (o *Obligation) EffectiveStatus(asOf time.Time) Status {
	if o.Status == StatusPending && truncateToDay(o.DueDate).Before(truncateToDay(asOf)) {
		return StatusOverdue
	}
	return o.Status
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
