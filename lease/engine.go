package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CALCULATION PIPELINE - validate -> PV -> schedule -> journal -> summary
// =============================================================================

// Result is the complete output of one calculation. All fields are value
// objects owned by the invocation that produced them; nothing is mutated
// after Calculate returns, and independent calculations share no state.
type Result struct {
	Contract     Contract        `json:"contract"`
	PresentValue decimal.Decimal `json:"present_value"`
	Schedule     []ScheduleEntry `json:"schedule"`
	Journal      []JournalLine   `json:"journal"`
	Summary      Summary         `json:"summary"`
}

// Calculate runs the whole pipeline as one unit. It returns a
// *ValidationError when the contract fails the validation gate and
// ErrEmptySchedule when the termination date precedes the first payment.
// Identical input always yields identical output.
func Calculate(c Contract) (*Result, error) {
	if messages := Validate(c); len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	schedule := GenerateSchedule(c)
	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}

	return &Result{
		Contract:     c,
		PresentValue: PresentValue(c.MonthlyPayment, c.Start, c.End, c.AnnualRatePercent),
		Schedule:     schedule,
		Journal:      GenerateJournal(c, schedule),
		Summary:      Summarize(c, schedule),
	}, nil
}
