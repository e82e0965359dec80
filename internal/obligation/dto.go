package obligation

import (
	"github.com/shopspring/decimal"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/common/validation"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
)

// RecordObligationDTO carries a new receivable or payable. DueDate is a
// calendar date in YYYY-MM-DD form.
type RecordObligationDTO struct {
	Kind        Kind            `json:"kind"`
	Counterpart string          `json:"counterpart"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	DueDate     string          `json:"due_date"`
	Description string          `json:"description"`
}

func (dto RecordObligationDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("counterpart", dto.Counterpart).Required()
	v.Field("amount", dto.Amount).Positive(errors.ErrCodeInvalidAmount)
	v.Field("due_date", dto.DueDate).Required().CalendarDate()
	v.Field("kind", string(dto.Kind)).Custom(func(interface{}) *errors.AppError {
		if !dto.Kind.Valid() {
			return errors.NewValidationFieldError("kind", "kind must be receivable or payable", errors.ErrCodeValidationFailed)
		}
		return nil
	})
	if err := v.Validate(); err != nil {
		return err
	}
	if _, err := money.ParseCurrency(dto.Currency); err != nil {
		return err
	}
	return nil
}
