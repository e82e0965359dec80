package report

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/cashbook-management/internal/balance"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
	"github.com/frahmantamala/cashbook-management/internal/user"
)

// timestampLayout is the cell format shared by export and import so the
// spreadsheet round-trips.
const timestampLayout = "2006-01-02 15:04:05"

// Columns is the fixed spreadsheet column order. Import reads rows back in
// exactly this order.
var Columns = []string{"ID", "Date", "User", "Direction", "Currency", "Channel", "Bank", "Amount", "Description"}

// MovementLister supplies the active ledger rows a document lists.
type MovementLister interface {
	ListActive() ([]*movement.Movement, error)
}

// BalanceSource supplies the aggregate figures printed under the listing.
type BalanceSource interface {
	Summary() ([]balance.CurrencySummary, error)
	GeneralBalance(currency money.Currency) (decimal.Decimal, error)
}

// ObligationLister supplies the receivable and payable sections.
type ObligationLister interface {
	ListAll(kind obligation.Kind) ([]*obligation.Obligation, error)
}

// UserResolver maps a spreadsheet username cell back to a stored user.
type UserResolver interface {
	GetByUsername(username string) (*user.User, error)
}

// MovementRecorder re-inserts imported rows as new movements.
type MovementRecorder interface {
	Record(actor *user.User, dto movement.RecordMovementDTO) (*movement.Movement, error)
}
