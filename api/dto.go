/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the engine's domain
  model from the external contract. Dates travel as YYYY-MM-DD strings;
  amounts as JSON numbers (decoded into decimal.Decimal).

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/lease-engine/lease"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ContractRequest is the input form for validation, calculation, export and
// draft persistence. Empty dates are allowed here (drafts are in-progress
// forms); the engine's validation gate decides whether a calculation runs.
type ContractRequest struct {
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	Frequency         string          `json:"frequency"`
	TerminationDate   string          `json:"termination_date,omitempty"`
}

// Contract converts the request into engine terms. Date format problems are
// returned as messages in the same shape as validation messages; empty date
// fields simply map to zero dates for the validation gate to flag.
func (r ContractRequest) Contract() (lease.Contract, []string) {
	var problems []string

	parse := func(field, value string) lease.TimePoint {
		if value == "" {
			return lease.TimePoint{}
		}
		tp, err := lease.ParseTimePoint(value)
		if err != nil {
			problems = append(problems, field+" must be a YYYY-MM-DD date")
			return lease.TimePoint{}
		}
		return tp
	}

	c := lease.Contract{
		Start:             parse("start date", r.StartDate),
		End:               parse("end date", r.EndDate),
		AnnualRatePercent: r.AnnualRatePercent,
		MonthlyPayment:    r.MonthlyPayment,
		Frequency:         lease.Frequency(r.Frequency),
	}
	if r.TerminationDate != "" {
		tp := parse("termination date", r.TerminationDate)
		if !tp.IsZero() {
			c.Termination = &tp
		}
	}
	return c, problems
}

func contractRequestFrom(c lease.Contract) ContractRequest {
	r := ContractRequest{
		StartDate:         dateString(c.Start),
		EndDate:           dateString(c.End),
		AnnualRatePercent: c.AnnualRatePercent,
		MonthlyPayment:    c.MonthlyPayment,
		Frequency:         string(c.Frequency),
	}
	if c.Termination != nil {
		r.TerminationDate = c.Termination.String()
	}
	return r
}

func dateString(tp lease.TimePoint) string {
	if tp.IsZero() {
		return ""
	}
	return tp.String()
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ValidateResponse reports the validation gate's outcome.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// CalculateResponse wraps the full engine result plus display strings.
type CalculateResponse struct {
	*lease.Result
	FormattedSummary lease.SummaryStrings `json:"formatted_summary"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
