package money

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal"
)

// Currency is one of the two currencies the book keeps: the local
// bolivar and the US dollar.
type Currency string

const (
	CurrencyVES Currency = "VES"
	CurrencyUSD Currency = "USD"
)

func (c Currency) Valid() bool {
	return c == CurrencyVES || c == CurrencyUSD
}

func Currencies() []Currency {
	return []Currency{CurrencyVES, CurrencyUSD}
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", internal.NewValidationFieldError("currency", "currency must be VES or USD", internal.ErrCodeInvalidCurrency)
	}
	return c, nil
}

// ParseAmount parses a decimal amount and enforces that it is strictly
// positive. Amounts are persisted as text and summed with decimal
// arithmetic so balances never accumulate float drift.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, internal.NewValidationFieldError("amount", "amount must be a valid number", internal.ErrCodeInvalidAmount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, internal.NewValidationFieldError("amount", "amount must be greater than zero", internal.ErrCodeInvalidAmount)
	}
	return amount, nil
}
