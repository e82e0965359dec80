package report

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/money"
	"github.com/frahmantamala/cashbook-management/internal/movement"
)

const sheetName = "Movements"

// SpreadsheetExporter writes the active ledger as one row per movement in
// the fixed Columns order, so the same file imports back losslessly.
type SpreadsheetExporter struct {
	movements MovementLister
	logger    *slog.Logger
}

func NewSpreadsheetExporter(movements MovementLister, logger *slog.Logger) *SpreadsheetExporter {
	return &SpreadsheetExporter{
		movements: movements,
		logger:    logger,
	}
}

func (e *SpreadsheetExporter) Write(w io.Writer) error {
	movements, err := e.movements.ListActive()
	if err != nil {
		return errors.NewIOError("failed to load movements for export", errors.ErrCodeExportFailed, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.NewIOError("failed to write header row", errors.ErrCodeExportFailed, err)
	}

	for i, m := range movements {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			m.ID,
			m.CreatedAt.Format(timestampLayout),
			m.Username,
			string(m.Direction),
			string(m.Currency),
			string(m.Channel),
			string(m.Bank),
			m.Amount.String(),
			m.Description,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return errors.NewIOError("failed to write movement row", errors.ErrCodeExportFailed, err)
		}
	}

	if err := f.Write(w); err != nil {
		e.logger.Error("spreadsheet rendering failed", "error", err)
		return errors.NewIOError("failed to write spreadsheet", errors.ErrCodeExportFailed, err)
	}

	e.logger.Info("spreadsheet exported", "movements", len(movements))
	return nil
}

// SpreadsheetImporter reads a previously exported file back. Rows are
// re-inserted as new movements under the user named in the row; rows whose
// username is unknown are skipped, not failed.
type SpreadsheetImporter struct {
	users     UserResolver
	movements MovementRecorder
	logger    *slog.Logger
}

func NewSpreadsheetImporter(users UserResolver, movements MovementRecorder, logger *slog.Logger) *SpreadsheetImporter {
	return &SpreadsheetImporter{
		users:     users,
		movements: movements,
		logger:    logger,
	}
}

// Read imports every data row and returns how many movements were inserted
// and how many rows were skipped.
func (i *SpreadsheetImporter) Read(r io.Reader) (inserted, skipped int, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, 0, errors.NewIOError("failed to open spreadsheet", errors.ErrCodeImportFailed, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, 0, errors.NewIOError("failed to read spreadsheet rows", errors.ErrCodeImportFailed, err)
	}

	for idx, row := range rows {
		if idx == 0 {
			continue // header
		}
		if len(row) < len(Columns)-1 {
			i.logger.Warn("skipping short row", "row", idx+1, "cells", len(row))
			skipped++
			continue
		}

		username := row[2]
		actor, err := i.users.GetByUsername(username)
		if err != nil {
			i.logger.Warn("skipping row for unknown user", "row", idx+1, "username", username)
			skipped++
			continue
		}

		dto, err := i.parseRow(row)
		if err != nil {
			i.logger.Warn("skipping malformed row", "row", idx+1, "error", err)
			skipped++
			continue
		}

		if _, err := i.movements.Record(actor, dto); err != nil {
			i.logger.Warn("skipping row rejected by ledger", "row", idx+1, "error", err)
			skipped++
			continue
		}
		inserted++
	}

	i.logger.Info("spreadsheet imported", "inserted", inserted, "skipped", skipped)
	return inserted, skipped, nil
}

func (i *SpreadsheetImporter) parseRow(row []string) (movement.RecordMovementDTO, error) {
	amount, err := money.ParseAmount(row[7])
	if err != nil {
		return movement.RecordMovementDTO{}, err
	}

	dto := movement.RecordMovementDTO{
		Direction: movement.Direction(row[3]),
		Amount:    amount,
		Currency:  money.Currency(row[4]),
		Channel:   movement.Channel(row[5]),
		Bank:      movement.Bank(row[6]),
	}
	if len(row) > 8 {
		dto.Description = row[8]
	}

	if occurred, err := time.Parse(timestampLayout, row[1]); err == nil {
		dto.OccurredAt = &occurred
	} else {
		return movement.RecordMovementDTO{}, fmt.Errorf("bad timestamp %q: %w", row[1], err)
	}

	return dto, nil
}
