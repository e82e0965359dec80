package movement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal/core/money"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

type Channel string

const (
	ChannelCash    Channel = "cash"
	ChannelDigital Channel = "digital"
)

func (c Channel) Valid() bool {
	return c == ChannelCash || c == ChannelDigital
}

// Bank tags a digital movement with the account it went through. Cash
// movements always carry BankNone.
type Bank string

const (
	BankNone      Bank = "none"
	BankVen       Bank = "ven"
	BankMercantil Bank = "mercantil"
	BankBanesco   Bank = "banesco"
)

func (b Bank) Valid() bool {
	switch b {
	case BankNone, BankVen, BankMercantil, BankBanesco:
		return true
	}
	return false
}

func Banks() []Bank {
	return []Bank{BankVen, BankMercantil, BankBanesco}
}

// Status is the movement lifecycle: rows are soft-deleted into the trash
// view and only purged from there.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

type Movement struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Username    string          `json:"username" gorm:"not null"`
	Direction   Direction       `json:"direction" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:text;not null"`
	Currency    money.Currency  `json:"currency" gorm:"not null"`
	Channel     Channel         `json:"channel" gorm:"not null"`
	Bank        Bank            `json:"bank" gorm:"not null;default:none"`
	Description string          `json:"description"`
	Status      Status          `json:"status" gorm:"not null;default:active"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (Movement) TableName() string {
	return "movements"
}

func (m *Movement) IsActive() bool {
	return m.Status == StatusActive
}

// Signed returns the movement amount with its direction applied, the value
// the balance engine folds over.
func (m *Movement) Signed() decimal.Decimal {
	if m.Direction == DirectionOut {
		return m.Amount.Neg()
	}
	return m.Amount
}

// Filter narrows balance queries and listings. Since is compared against the
// calendar date of CreatedAt, not the full timestamp. A Bank filter only
// ever matches digital movements carrying that tag.
type Filter struct {
	Currency *money.Currency
	Bank     *Bank
	Since    *time.Time
}

// SinceIncludes reports whether t falls inside the Since window. Both sides
// are truncated to their local calendar date, so a movement recorded just
// before midnight stays in the day it was entered.
func (f Filter) SinceIncludes(t time.Time) bool {
	if f.Since == nil {
		return true
	}
	return !truncateToDay(t).Before(truncateToDay(*f.Since))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
