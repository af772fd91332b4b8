package lease_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/lease-engine/lease"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) lease.TimePoint {
	return lease.NewTimePoint(year, month, day)
}

func amount(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// standardContract is a 24-month lease: 2024-01-01 to 2025-12-01,
// 1,000,000/month at 6% annual, monthly reporting.
func standardContract() lease.Contract {
	return lease.Contract{
		Start:             date(2024, time.January, 1),
		End:               date(2025, time.December, 1),
		AnnualRatePercent: amount(6),
		MonthlyPayment:    amount(1_000_000),
		Frequency:         lease.FrequencyMonthly,
	}
}

// zeroRateContract is a 12-month lease at a zero rate. The validation gate
// rejects a zero rate, so this fixture only exercises the calculators
// directly.
func zeroRateContract() lease.Contract {
	return lease.Contract{
		Start:          date(2024, time.January, 1),
		End:            date(2024, time.December, 1),
		MonthlyPayment: amount(1_000_000),
		Frequency:      lease.FrequencyMonthly,
	}
}

// quarterlyContract is a 36-month lease with quarterly reporting.
func quarterlyContract() lease.Contract {
	c := standardContract()
	c.End = date(2026, time.December, 1)
	c.Frequency = lease.FrequencyQuarterly
	return c
}

func terminatedContract() lease.Contract {
	c := standardContract()
	termination := date(2025, time.January, 1)
	c.Termination = &termination
	return c
}
