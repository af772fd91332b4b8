package lease

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// SUMMARY - Derived headline figures for export and history
// =============================================================================

// Summary carries the headline figures derived from a computed schedule.
type Summary struct {
	Months            int             `json:"months"`
	InitialLiability  decimal.Decimal `json:"initial_liability"`
	TotalPayments     decimal.Decimal `json:"total_payments"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
	TotalDepreciation decimal.Decimal `json:"total_depreciation"`
}

// SummaryStrings is the human-readable form handed to the export sink.
type SummaryStrings struct {
	Duration         string `json:"duration"`
	InitialLiability string `json:"initial_liability"`
	TotalPayments    string `json:"total_payments"`
	TotalInterest    string `json:"total_interest"`
}

// Summarize derives the summary from a schedule. The initial liability is
// the opening balance of the first period, i.e. the present value.
func Summarize(c Contract, schedule []ScheduleEntry) Summary {
	s := Summary{Months: len(schedule)}
	if len(schedule) > 0 {
		s.InitialLiability = schedule[0].Opening
	}
	s.TotalPayments = decimal.Zero
	s.TotalInterest = decimal.Zero
	s.TotalDepreciation = decimal.Zero
	for _, entry := range schedule {
		s.TotalPayments = s.TotalPayments.Add(entry.Payment)
		s.TotalInterest = s.TotalInterest.Add(entry.Interest)
		s.TotalDepreciation = s.TotalDepreciation.Add(entry.Depreciation)
	}
	return s
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a whole-unit amount with thousands separators.
func FormatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprintf("%d", d.IntPart())
}

// Format renders the summary for display and export.
func (s Summary) Format() SummaryStrings {
	return SummaryStrings{
		Duration:         amountPrinter.Sprintf("%d months", s.Months),
		InitialLiability: FormatAmount(s.InitialLiability),
		TotalPayments:    FormatAmount(s.TotalPayments),
		TotalInterest:    FormatAmount(s.TotalInterest),
	}
}
