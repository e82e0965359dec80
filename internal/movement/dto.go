package movement

import (
	"time"

	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
)

// RecordMovementDTO carries a ledger entry to record. OccurredAt backdates
// the entry when set; when nil the creation timestamp defaults to now.
type RecordMovementDTO struct {
	Direction   Direction       `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    money.Currency  `json:"currency"`
	Channel     Channel         `json:"channel"`
	Bank        Bank            `json:"bank,omitempty"`
	Description string          `json:"description"`
	OccurredAt  *time.Time      `json:"occurred_at,omitempty"`
}

func (dto RecordMovementDTO) Validate() error {
	if !dto.Amount.IsPositive() {
		return errors.NewValidationFieldError("amount", "amount must be greater than zero", errors.ErrCodeInvalidAmount)
	}
	if !dto.Currency.Valid() {
		return errors.NewValidationFieldError("currency", "currency must be VES or USD", errors.ErrCodeInvalidCurrency)
	}
	if !dto.Direction.Valid() {
		return errors.NewValidationFieldError("direction", "direction must be in or out", errors.ErrCodeValidationFailed)
	}
	if !dto.Channel.Valid() {
		return errors.NewValidationFieldError("channel", "channel must be cash or digital", errors.ErrCodeInvalidChannel)
	}
	if dto.Bank != "" && !dto.Bank.Valid() {
		return errors.NewValidationFieldError("bank", "unknown bank tag", errors.ErrCodeInvalidBank)
	}
	if dto.Channel == ChannelCash && dto.Bank != "" && dto.Bank != BankNone {
		return errors.NewValidationFieldError("bank", "bank tags only apply to digital movements", errors.ErrCodeInvalidBank)
	}
	return nil
}
