/*
Package lease computes right-of-use lease accounting.

PURPOSE:
  Given the contractual terms of a lease (start, end, rate, fixed monthly
  payment), this package derives the present value of the payments, the
  month-by-month amortization of the lease liability, the current vs
  non-current split of that liability on a rolling 12-month horizon, and a
  balanced double-entry journal covering the whole life of the lease,
  including early termination.

KEY CONCEPTS IN THIS FILE (types.go):
  - Contract:      Immutable input terms
  - ScheduleEntry: One amortization period (interest/principal/depreciation)
  - JournalLine:   One row of the double-entry ledger
  - Account:       Fixed chart of accounts

DESIGN PRINCIPLES:
  1. Purity: every operation is a deterministic function of its inputs.
     No clock, no randomness, no shared state between calculations.
  2. Precision: amounts are decimal.Decimal, rounded half-up to whole
     currency units at every derivation step.
  3. Immutability: schedules and journals are produced once and never
     mutated afterwards.

SEE ALSO:
  - presentvalue.go: Ordinary-annuity present value
  - schedule.go:     Amortization schedule generation
  - classify.go:     Current/non-current liability classification
  - journal.go:      Journal entry generation
  - validate.go:     Contract validation gate
*/
package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// REPORTING FREQUENCY
// =============================================================================

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyQuarterly
}

// =============================================================================
// CONTRACT - Input terms, immutable once validated
// =============================================================================

// Contract holds the contractual terms of a lease. It is consumed read-only
// by every downstream computation; Validate gates all of them.
type Contract struct {
	Start             TimePoint       `json:"start_date"`
	End               TimePoint       `json:"end_date"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	Frequency         Frequency       `json:"frequency"`
	Termination       *TimePoint      `json:"termination_date,omitempty"`
}

// Periods returns the number of monthly periods spanned by the contract,
// inclusive of both boundary months.
func (c Contract) Periods() int {
	return MonthsBetween(c.Start, c.End) + 1
}

// =============================================================================
// SCHEDULE ENTRY - One amortization period
// =============================================================================

// ScheduleEntry is one row of the amortization table. Period is the 1-based
// period number. Invariants maintained by the generator:
//
//	Principal = Payment - Interest
//	Closing   = max(0, Opening - Principal)
//	sum(Depreciation) over a full schedule == present value, exactly
type ScheduleEntry struct {
	Period       int             `json:"period"`
	PaymentDate  TimePoint       `json:"payment_date"`
	Payment      decimal.Decimal `json:"payment"`
	Interest     decimal.Decimal `json:"interest"`
	Principal    decimal.Decimal `json:"principal"`
	Opening      decimal.Decimal `json:"opening_balance"`
	Closing      decimal.Decimal `json:"closing_balance"`
	Depreciation decimal.Decimal `json:"depreciation"`
}

// =============================================================================
// CHART OF ACCOUNTS
// =============================================================================

type Account string

const (
	AccountRightOfUseAsset          Account = "right-of-use-asset"
	AccountCurrentLeaseLiability    Account = "current-lease-liability"
	AccountNonCurrentLeaseLiability Account = "non-current-lease-liability"
	AccountLeaseLiability           Account = "lease-liability"
	AccountInterestExpense          Account = "interest-expense"
	AccountDepreciationExpense      Account = "depreciation-expense"
	AccountAccumulatedDepreciation  Account = "accumulated-depreciation-of-right-of-use-asset"
	AccountCash                     Account = "cash"
	AccountDerecognitionGain        Account = "derecognition-gain"
	AccountDerecognitionLoss        Account = "derecognition-loss"
)

// =============================================================================
// JOURNAL LINE - One row of the double-entry ledger
// =============================================================================

// JournalLine is a single ledger row. Exactly one of Debit/Credit is nonzero
// and Amount always mirrors that side. Lines emitted together as one logical
// transaction always balance (total debits == total credits).
type JournalLine struct {
	Date    TimePoint       `json:"date"`
	Account Account         `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Amount  decimal.Decimal `json:"amount"`
	Note    string          `json:"note"`
}

func debitLine(date TimePoint, account Account, amount decimal.Decimal, note string) JournalLine {
	return JournalLine{Date: date, Account: account, Debit: amount, Credit: decimal.Zero, Amount: amount, Note: note}
}

func creditLine(date TimePoint, account Account, amount decimal.Decimal, note string) JournalLine {
	return JournalLine{Date: date, Account: account, Debit: decimal.Zero, Credit: amount, Amount: amount, Note: note}
}

// =============================================================================
// ROUNDING
// =============================================================================

// roundUnit rounds to the nearest whole currency unit, half away from zero.
// All engine amounts are non-negative, so this is plain half-up rounding.
// The same rule applies to the present value, periodic interest and the
// straight-line depreciation base, which is what makes the schedule close
// exactly under the final-period plug.
func roundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// monthlyRate converts an annual nominal percentage to a monthly rate by
// simple division (rate / 100 / 12), not a compounding-equivalent conversion.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(decimal.NewFromInt(1200))
}
