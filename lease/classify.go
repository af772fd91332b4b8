/*
classify.go - Current vs non-current liability classification

PURPOSE:
  At every reporting date, the slice of the lease liability falling due
  within the next twelve months must sit in current-lease-liability, the
  rest in non-current. The split is a rolling window, not a one-time split:
  as the horizon moves forward one period, the period newly entering the
  12-month window is reclassified from non-current to current.

  Classification is a stateless function of (schedule, dates), so it can be
  evaluated at arbitrary reporting dates without replaying history and never
  caches per-period state.
*/
package lease

import (
	"github.com/shopspring/decimal"
)

// InitialCurrentPortion returns the liability due within twelve months of
// initial recognition: the sum of principal over the first twelve periods,
// or over the whole schedule when it is shorter than that.
func InitialCurrentPortion(schedule []ScheduleEntry) decimal.Decimal {
	return sumPrincipal(schedule, 1, 12)
}

// CurrentPortionAsOf returns the amount to reclassify from non-current to
// current at the given reporting date. It counts the whole periods elapsed
// since inception and looks twelve periods ahead:
//
//	monthly:   the single period 12 + elapsed
//	quarterly: the three periods starting at 12 + (quarter-1)*3 + 1,
//	           where quarter = ceil(elapsed / 3)
//
// Periods beyond the end of the schedule contribute nothing.
func CurrentPortionAsOf(schedule []ScheduleEntry, reportingDate, start TimePoint, freq Frequency) decimal.Decimal {
	elapsed := MonthsBetween(start, reportingDate) + 1
	first, last := reclassTarget(elapsed, freq)
	return sumPrincipal(schedule, first, last)
}

// reclassTarget returns the 1-based inclusive period range entering the
// 12-month window for the given elapsed period count.
func reclassTarget(elapsed int, freq Frequency) (first, last int) {
	if freq == FrequencyQuarterly {
		quarter := (elapsed + 2) / 3
		first = 12 + (quarter-1)*3 + 1
		return first, first + 2
	}
	target := 12 + elapsed
	return target, target
}

// sumPrincipal sums principal over the 1-based inclusive period range,
// clipped to the schedule.
func sumPrincipal(schedule []ScheduleEntry, first, last int) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range schedule {
		if entry.Period >= first && entry.Period <= last {
			total = total.Add(entry.Principal)
		}
	}
	return total
}
