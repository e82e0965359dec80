package report

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
	"github.com/frahmantamala/cashbook-management/internal/user"
)

// PDFExporter renders the financial report document: acting user, aggregate
// balances, the active ledger and both obligation books.
type PDFExporter struct {
	movements   MovementLister
	balances    BalanceSource
	obligations ObligationLister
	logger      *slog.Logger
}

func NewPDFExporter(movements MovementLister, balances BalanceSource, obligations ObligationLister, logger *slog.Logger) *PDFExporter {
	return &PDFExporter{
		movements:   movements,
		balances:    balances,
		obligations: obligations,
		logger:      logger,
	}
}

// Write renders the report for the acting user into w.
func (e *PDFExporter) Write(w io.Writer, actor *user.User) error {
	movements, err := e.movements.ListActive()
	if err != nil {
		return errors.NewIOError("failed to load movements for report", errors.ErrCodeExportFailed, err)
	}
	summaries, err := e.balances.Summary()
	if err != nil {
		return errors.NewIOError("failed to compute balances for report", errors.ErrCodeExportFailed, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, "Financial Report", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("User: %s (%s)", actor.Username, actor.FullName()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format(timestampLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, s := range summaries {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, string(s.Currency), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Total In: %s", s.TotalIn.StringFixed(2)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Total Out: %s", s.TotalOut.StringFixed(2)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Net Balance: %s", s.Net.StringFixed(2)), "", 1, "L", false, 0, "")

		general, err := e.balances.GeneralBalance(s.Currency)
		if err != nil {
			return errors.NewIOError("failed to compute general balance for report", errors.ErrCodeExportFailed, err)
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("General Balance (incl. settled accounts): %s", general.StringFixed(2)), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Movements", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, m := range movements {
		line := fmt.Sprintf("#%d  %s  %s  %s  %s %s  %s  %s",
			m.ID,
			m.CreatedAt.Format(timestampLayout),
			m.Username,
			m.Direction,
			m.Amount.StringFixed(2),
			m.Currency,
			channelLabel(m),
			m.Description)
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	if err := e.writeObligations(pdf, "Accounts Receivable", obligation.KindReceivable); err != nil {
		return err
	}
	if err := e.writeObligations(pdf, "Accounts Payable", obligation.KindPayable); err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		e.logger.Error("pdf rendering failed", "error", err)
		return errors.NewIOError("failed to render pdf report", errors.ErrCodeExportFailed, err)
	}

	e.logger.Info("pdf report generated", "username", actor.Username, "movements", len(movements))
	return nil
}

func (e *PDFExporter) writeObligations(pdf *fpdf.Fpdf, title string, kind obligation.Kind) error {
	obligations, err := e.obligations.ListAll(kind)
	if err != nil {
		return errors.NewIOError("failed to load obligations for report", errors.ErrCodeExportFailed, err)
	}

	now := time.Now()
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, o := range obligations {
		line := fmt.Sprintf("%s - %s %s - due %s - %s",
			o.Counterpart,
			o.Amount.StringFixed(2),
			o.Currency,
			o.DueDate.Format("2006-01-02"),
			o.EffectiveStatus(now))
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	return nil
}

func channelLabel(m *movement.Movement) string {
	if m.Channel == movement.ChannelDigital && m.Bank != movement.BankNone {
		return fmt.Sprintf("%s/%s", m.Channel, m.Bank)
	}
	return string(m.Channel)
}
