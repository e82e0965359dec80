package balance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/movement"
)

// Query narrows a balance computation. All fields are optional; the zero
// query covers the whole active ledger.
type Query struct {
	Currency *money.Currency
	Bank     *movement.Bank
	Since    *time.Time
}

func (q Query) filter() movement.Filter {
	return movement.Filter{
		Currency: q.Currency,
		Bank:     q.Bank,
		Since:    q.Since,
	}
}

// ForCurrency builds the most common query.
func ForCurrency(c money.Currency) Query {
	return Query{Currency: &c}
}

// ForBank narrows a currency query to one bank tag. Only digital movements
// carry bank tags, so cash never shows up here.
func ForBank(c money.Currency, b movement.Bank) Query {
	return Query{Currency: &c, Bank: &b}
}

// SinceDays narrows a currency query to movements whose calendar date is at
// most n days old.
func SinceDays(c money.Currency, n int) Query {
	since := time.Now().AddDate(0, 0, -n)
	return Query{Currency: &c, Since: &since}
}

// Comparative holds the day / 7-day / 30-day window balances shown side by
// side on the dashboard.
type Comparative struct {
	Currency money.Currency  `json:"currency"`
	Today    decimal.Decimal `json:"today"`
	Week     decimal.Decimal `json:"week"`
	Month    decimal.Decimal `json:"month"`
}

// CurrencySummary is the per-currency report figure: total in, total out
// and the net balance.
type CurrencySummary struct {
	Currency money.Currency  `json:"currency"`
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Net      decimal.Decimal `json:"net"`
}
