/*
schedule.go - Month-by-month amortization of the lease liability

PURPOSE:
  Turns a validated contract into the ordered amortization table. Each
  period accrues interest on the opening balance (in-arrears convention),
  splits the fixed payment into interest and principal, and carries the
  closing balance forward. Depreciation is straight-line with a final-period
  plug so that the depreciation total equals the present value exactly,
  absorbing the rounding drift of the per-period division.

STATE THREADING:
  The running liability balance and the accumulated depreciation are an
  explicit accumulator (scheduleState) folded over the period indices, which
  keeps the final-period plug a visible special case instead of implicit
  loop state.

TRUNCATION:
  Periods whose payment date falls strictly after the termination date are
  never generated. Termination accounting itself lives in journal.go, which
  reads the untruncated tail.
*/
package lease

import (
	"github.com/shopspring/decimal"
)

// scheduleState is the accumulator threaded through the generation fold.
type scheduleState struct {
	balance     decimal.Decimal // opening liability balance of the next period
	depreciated decimal.Decimal // depreciation recognized so far
}

// GenerateSchedule produces the amortization table for the contract,
// truncated strictly after the termination date when one is set. The result
// is empty only when the termination date precedes the first payment date.
func GenerateSchedule(c Contract) []ScheduleEntry {
	return generateSchedule(c, c.Termination)
}

// fullSchedule produces the untruncated table, ignoring any termination
// date. Termination derecognition sums its post-termination tail.
func fullSchedule(c Contract) []ScheduleEntry {
	return generateSchedule(c, nil)
}

func generateSchedule(c Contract, cutoff *TimePoint) []ScheduleEntry {
	n := c.Periods()
	presentValue := PresentValue(c.MonthlyPayment, c.Start, c.End, c.AnnualRatePercent)
	rate := monthlyRate(c.AnnualRatePercent)
	baseDepreciation := roundUnit(presentValue.Div(decimal.NewFromInt(int64(n))))

	state := scheduleState{balance: presentValue, depreciated: decimal.Zero}
	entries := make([]ScheduleEntry, 0, n)

	for i := 0; i < n; i++ {
		paymentDate := c.Start.AddMonths(i)
		if cutoff != nil && paymentDate.After(*cutoff) {
			break
		}

		var entry ScheduleEntry
		entry, state = amortizeStep(c, state, i, n, paymentDate, rate, presentValue, baseDepreciation)
		entries = append(entries, entry)
	}

	return entries
}

// amortizeStep advances the fold by one period and returns the emitted entry
// together with the state carried into the next period.
func amortizeStep(c Contract, state scheduleState, i, n int, paymentDate TimePoint, rate, presentValue, baseDepreciation decimal.Decimal) (ScheduleEntry, scheduleState) {
	interest := roundUnit(state.balance.Mul(rate))
	principal := c.MonthlyPayment.Sub(interest)

	closing := state.balance.Sub(principal)
	if closing.IsNegative() {
		closing = decimal.Zero
	}

	// Last period plugs the straight-line remainder so the depreciation
	// total equals the present value exactly.
	depreciation := baseDepreciation
	if i == n-1 {
		depreciation = presentValue.Sub(state.depreciated)
	}

	entry := ScheduleEntry{
		Period:       i + 1,
		PaymentDate:  paymentDate,
		Payment:      c.MonthlyPayment,
		Interest:     interest,
		Principal:    principal,
		Opening:      state.balance,
		Closing:      closing,
		Depreciation: depreciation,
	}
	next := scheduleState{
		balance:     closing,
		depreciated: state.depreciated.Add(depreciation),
	}
	return entry, next
}
