package balance

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
)

// MovementSource is the slice of the ledger store the engine reads.
type MovementSource interface {
	ListActiveFiltered(f movement.Filter) ([]*movement.Movement, error)
}

// ObligationSource supplies the settled obligation totals folded into the
// general balance.
type ObligationSource interface {
	SumByStatus(kind obligation.Kind, status obligation.Status, currency money.Currency) (decimal.Decimal, error)
}

// Service is the balance engine. Every balance figure in the system comes
// out of the single Balance aggregation; the variants only differ in their
// query.
type Service struct {
	movements   MovementSource
	obligations ObligationSource
	logger      *slog.Logger
}

func NewService(movements MovementSource, obligations ObligationSource, logger *slog.Logger) *Service {
	return &Service{
		movements:   movements,
		obligations: obligations,
		logger:      logger,
	}
}

// Balance computes sum(in) - sum(out) over active movements matching the
// query. Soft-deleted rows never contribute.
func (s *Service) Balance(q Query) (decimal.Decimal, error) {
	matches, err := s.movements.ListActiveFiltered(q.filter())
	if err != nil {
		s.logger.Error("failed to query movements for balance", "error", err)
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, m := range matches {
		total = total.Add(m.Signed())
	}
	return total, nil
}

// Summary returns the per-currency in/out/net totals over the whole active
// ledger, in the order of money.Currencies.
func (s *Service) Summary() ([]CurrencySummary, error) {
	summaries := make([]CurrencySummary, 0, len(money.Currencies()))
	for _, currency := range money.Currencies() {
		matches, err := s.movements.ListActiveFiltered(ForCurrency(currency).filter())
		if err != nil {
			return nil, err
		}

		in, out := decimal.Zero, decimal.Zero
		for _, m := range matches {
			if m.Direction == movement.DirectionIn {
				in = in.Add(m.Amount)
			} else {
				out = out.Add(m.Amount)
			}
		}

		summaries = append(summaries, CurrencySummary{
			Currency: currency,
			TotalIn:  in,
			TotalOut: out,
			Net:      in.Sub(out),
		})
	}
	return summaries, nil
}

// PerBank returns the balance of each bank tag in one currency.
func (s *Service) PerBank(currency money.Currency) (map[movement.Bank]decimal.Decimal, error) {
	balances := make(map[movement.Bank]decimal.Decimal, len(movement.Banks()))
	for _, bank := range movement.Banks() {
		b, err := s.Balance(ForBank(currency, bank))
		if err != nil {
			return nil, err
		}
		balances[bank] = b
	}
	return balances, nil
}

// Comparative returns the day, 7-day and 30-day window balances for one
// currency, each window keyed on the calendar date of the movements.
func (s *Service) Comparative(currency money.Currency) (Comparative, error) {
	c := Comparative{Currency: currency}

	windows := []struct {
		days int
		dst  *decimal.Decimal
	}{
		{0, &c.Today},
		{7, &c.Week},
		{30, &c.Month},
	}
	for _, w := range windows {
		b, err := s.Balance(SinceDays(currency, w.days))
		if err != nil {
			return Comparative{}, err
		}
		*w.dst = b
	}
	return c, nil
}

// GeneralBalance folds settled obligations into the ledger balance for one
// currency: paid receivables add, paid payables subtract.
func (s *Service) GeneralBalance(currency money.Currency) (decimal.Decimal, error) {
	ledger, err := s.Balance(ForCurrency(currency))
	if err != nil {
		return decimal.Zero, err
	}

	receivables, err := s.obligations.SumByStatus(obligation.KindReceivable, obligation.StatusPaid, currency)
	if err != nil {
		s.logger.Error("failed to sum paid receivables", "error", err, "currency", currency)
		return decimal.Zero, err
	}

	payables, err := s.obligations.SumByStatus(obligation.KindPayable, obligation.StatusPaid, currency)
	if err != nil {
		s.logger.Error("failed to sum paid payables", "error", err, "currency", currency)
		return decimal.Zero, err
	}

	return ledger.Add(receivables).Sub(payables), nil
}
