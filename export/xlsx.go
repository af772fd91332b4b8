/*
Package export renders a computed lease calculation as an XLSX workbook.

PURPOSE:
  Pure sink for the engine's output: one workbook with a Schedule sheet
  (input terms, summary figures, amortization table) and a Journal sheet
  (the double-entry ledger). The engine never calls this package; the API
  layer hands it an already-computed result, so an export failure never
  touches a calculation.
*/
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warp/lease-engine/lease"
)

const (
	scheduleSheet = "Schedule"
	journalSheet  = "Journal"
)

// Write renders the result as an XLSX workbook to w.
func Write(w io.Writer, result *lease.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeScheduleSheet(f, result); err != nil {
		return fmt.Errorf("schedule sheet: %w", err)
	}
	if err := writeJournalSheet(f, result.Journal); err != nil {
		return fmt.Errorf("journal sheet: %w", err)
	}

	// Replace the default sheet and land on the schedule.
	idx, err := f.GetSheetIndex(scheduleSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, result *lease.Result) error {
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return err
	}

	c := result.Contract
	summary := result.Summary.Format()

	rows := [][]any{
		{"Lease calculation"},
		{},
		{"Input"},
		{"Start date", c.Start.String()},
		{"End date", c.End.String()},
		{"Duration", summary.Duration},
		{"Annual rate (%)", c.AnnualRatePercent.String()},
		{"Monthly payment", c.MonthlyPayment.IntPart()},
		{"Reporting frequency", string(c.Frequency)},
	}
	if c.Termination != nil {
		rows = append(rows, []any{"Termination date", c.Termination.String()})
	}
	rows = append(rows,
		[]any{},
		[]any{"Summary"},
		[]any{"Initial lease liability", summary.InitialLiability},
		[]any{"Total payments", summary.TotalPayments},
		[]any{"Total interest", summary.TotalInterest},
		[]any{},
		[]any{"No", "Payment date", "Payment", "Interest", "Principal", "Opening balance", "Closing balance", "Depreciation"},
	)
	for _, entry := range result.Schedule {
		rows = append(rows, []any{
			entry.Period,
			entry.PaymentDate.String(),
			entry.Payment.IntPart(),
			entry.Interest.IntPart(),
			entry.Principal.IntPart(),
			entry.Opening.IntPart(),
			entry.Closing.IntPart(),
			entry.Depreciation.IntPart(),
		})
	}

	if err := writeRows(f, scheduleSheet, rows); err != nil {
		return err
	}
	return f.SetColWidth(scheduleSheet, "A", "H", 16)
}

func writeJournalSheet(f *excelize.File, journal []lease.JournalLine) error {
	if _, err := f.NewSheet(journalSheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Date", "Account", "Debit", "Credit", "Amount", "Note"},
	}
	for _, line := range journal {
		debit, credit := any(nil), any(nil)
		if line.Debit.IsPositive() {
			debit = line.Debit.IntPart()
		}
		if line.Credit.IsPositive() {
			credit = line.Credit.IntPart()
		}
		rows = append(rows, []any{
			line.Date.String(),
			string(line.Account),
			debit,
			credit,
			line.Amount.IntPart(),
			line.Note,
		})
	}

	if err := writeRows(f, journalSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(journalSheet, "B", "B", 40); err != nil {
		return err
	}
	return f.SetColWidth(journalSheet, "F", "F", 44)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
