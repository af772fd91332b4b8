/*
journal.go - Double-entry journal generation

PURPOSE:
  Emits the chronological ledger for a lease: initial recognition, one block
  of entries per reporting period (depreciation, interest, payment,
  liability reclassification), and exactly one closing branch - early
  termination derecognition when a termination date is set, normal-maturity
  derecognition otherwise.

ORDERING:
  Line order is generation order: initial recognition first, period groups
  in schedule order, the closing branch last. This is also chronological
  except under early termination, where the closing lines carry the
  termination date itself and so predate the last group's period-end date.
  No sorting pass runs afterwards, so callers must not reorder.

BALANCE:
  Every logical transaction emitted together balances (total debits equal
  total credits). Lines whose amount would be zero are omitted.

TRUST:
  This component performs no validation; it trusts a schedule produced by
  GenerateSchedule behind the Validate gate.
*/
package lease

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GenerateJournal produces the ordered ledger for the contract and its
// (possibly termination-truncated) schedule.
func GenerateJournal(c Contract, schedule []ScheduleEntry) []JournalLine {
	presentValue := PresentValue(c.MonthlyPayment, c.Start, c.End, c.AnnualRatePercent)

	lines := initialRecognition(c, schedule, presentValue)
	lines = append(lines, periodEntries(c, schedule)...)

	if c.Termination != nil {
		lines = append(lines, terminationEntries(c)...)
	} else {
		lines = append(lines, maturityEntries(c, schedule)...)
	}
	return lines
}

// =============================================================================
// INITIAL RECOGNITION
// =============================================================================

func initialRecognition(c Contract, schedule []ScheduleEntry, presentValue decimal.Decimal) []JournalLine {
	current := InitialCurrentPortion(schedule)
	nonCurrent := presentValue.Sub(current)

	lines := []JournalLine{
		debitLine(c.Start, AccountRightOfUseAsset, presentValue, "initial recognition"),
	}
	if current.IsPositive() {
		lines = append(lines, creditLine(c.Start, AccountCurrentLeaseLiability, current,
			"initial recognition (periods 1-12)"))
	}
	if nonCurrent.IsPositive() {
		lines = append(lines, creditLine(c.Start, AccountNonCurrentLeaseLiability, nonCurrent,
			"initial recognition (period 13 onward)"))
	}
	return lines
}

// =============================================================================
// PERIODIC ENTRIES - One block per reporting period
// =============================================================================

// periodGroup accumulates the schedule entries sharing a grouping-end date.
type periodGroup struct {
	end          TimePoint
	depreciation decimal.Decimal
	interest     decimal.Decimal
	payment      decimal.Decimal
}

// groupByPeriod buckets schedule entries by their canonical period-end date.
// The schedule is chronological, so first-occurrence order is group order.
func groupByPeriod(schedule []ScheduleEntry, freq Frequency) []periodGroup {
	var groups []periodGroup
	for _, entry := range schedule {
		key := GroupKey(entry.PaymentDate, freq)
		if len(groups) == 0 || !groups[len(groups)-1].end.Equal(key) {
			groups = append(groups, periodGroup{
				end:          key,
				depreciation: decimal.Zero,
				interest:     decimal.Zero,
				payment:      decimal.Zero,
			})
		}
		g := &groups[len(groups)-1]
		g.depreciation = g.depreciation.Add(entry.Depreciation)
		g.interest = g.interest.Add(entry.Interest)
		g.payment = g.payment.Add(entry.Payment)
	}
	return groups
}

func periodEntries(c Contract, schedule []ScheduleEntry) []JournalLine {
	label := string(c.Frequency)
	var lines []JournalLine

	for _, g := range groupByPeriod(schedule, c.Frequency) {
		if g.depreciation.IsPositive() {
			note := label + " depreciation"
			lines = append(lines,
				debitLine(g.end, AccountDepreciationExpense, g.depreciation, note),
				creditLine(g.end, AccountAccumulatedDepreciation, g.depreciation, note))
		}

		if g.interest.IsPositive() {
			note := label + " interest"
			lines = append(lines,
				debitLine(g.end, AccountInterestExpense, g.interest, note),
				creditLine(g.end, AccountLeaseLiability, g.interest, note))
		}

		// The cash disbursement debits the liability in full; together
		// with the interest credited above, the liability nets down by
		// exactly the period's principal and the block stays balanced.
		if g.payment.IsPositive() {
			note := label + " lease payment"
			lines = append(lines,
				debitLine(g.end, AccountLeaseLiability, g.payment, note),
				creditLine(g.end, AccountCash, g.payment, note))
		}

		if reclass := CurrentPortionAsOf(schedule, g.end, c.Start, c.Frequency); reclass.IsPositive() {
			note := reclassNote(c, g.end)
			lines = append(lines,
				debitLine(g.end, AccountNonCurrentLeaseLiability, reclass, note),
				creditLine(g.end, AccountCurrentLeaseLiability, reclass, note))
		}
	}
	return lines
}

// reclassNote annotates a reclassification with the period range it moves
// into the 12-month window.
func reclassNote(c Contract, reportingDate TimePoint) string {
	elapsed := MonthsBetween(c.Start, reportingDate) + 1
	first, last := reclassTarget(elapsed, c.Frequency)
	if first == last {
		return fmt.Sprintf("reclassification to current (period %d)", first)
	}
	return fmt.Sprintf("reclassification to current (periods %d-%d)", first, last)
}

// =============================================================================
// DERECOGNITION - Early termination or normal maturity, exactly one branch
// =============================================================================

// terminationEntries removes the remaining carrying amounts at the
// termination date. The remaining right-of-use asset is the depreciation
// never recognized; the remaining liability is the principal never repaid,
// summed as opening-minus-closing over the post-termination tail of the
// untruncated schedule so it telescopes to the outstanding balance at
// termination without double-counting the boundary period.
func terminationEntries(c Contract) []JournalLine {
	termination := *c.Termination
	remainingAsset := decimal.Zero
	remainingLiability := decimal.Zero

	for _, entry := range fullSchedule(c) {
		if !entry.PaymentDate.After(termination) {
			continue
		}
		remainingAsset = remainingAsset.Add(entry.Depreciation)
		remainingLiability = remainingLiability.Add(entry.Opening.Sub(entry.Closing))
	}

	var lines []JournalLine
	if remainingLiability.IsPositive() {
		lines = append(lines, debitLine(termination, AccountLeaseLiability, remainingLiability,
			"early termination - derecognize lease liability"))
	}
	if remainingAsset.IsPositive() {
		lines = append(lines, creditLine(termination, AccountRightOfUseAsset, remainingAsset,
			"early termination - derecognize right-of-use asset"))
	}

	gainOrLoss := remainingLiability.Sub(remainingAsset)
	switch {
	case gainOrLoss.IsPositive():
		lines = append(lines, creditLine(termination, AccountDerecognitionGain, gainOrLoss,
			"early termination - derecognition gain"))
	case gainOrLoss.IsNegative():
		lines = append(lines, debitLine(termination, AccountDerecognitionLoss, gainOrLoss.Abs(),
			"early termination - derecognition loss"))
	}
	return lines
}

// maturityEntries fully derecognizes the asset at the contract end date: the
// asset is fully depreciated by then, so accumulated depreciation equals the
// original present value and the transaction balances.
func maturityEntries(c Contract, schedule []ScheduleEntry) []JournalLine {
	if len(schedule) == 0 {
		return nil
	}

	totalDepreciation := decimal.Zero
	for _, entry := range schedule {
		totalDepreciation = totalDepreciation.Add(entry.Depreciation)
	}
	originalAsset := schedule[0].Opening

	return []JournalLine{
		debitLine(c.End, AccountAccumulatedDepreciation, totalDepreciation,
			"maturity - derecognize accumulated depreciation"),
		creditLine(c.End, AccountRightOfUseAsset, originalAsset,
			"maturity - derecognize right-of-use asset"),
	}
}
