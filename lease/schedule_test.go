package lease_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/lease-engine/lease"
)

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	// GIVEN: A 12-month lease at a zero rate
	// WHEN: Generating the schedule
	// THEN: Interest is always zero, principal and depreciation equal the
	//       payment every period, and the liability decays to zero

	schedule := lease.GenerateSchedule(zeroRateContract())
	require.Len(t, schedule, 12)

	for _, entry := range schedule {
		assert.True(t, entry.Interest.IsZero(), "period %d interest %s", entry.Period, entry.Interest)
		assert.True(t, entry.Principal.Equal(amount(1_000_000)), "period %d principal %s", entry.Period, entry.Principal)
		assert.True(t, entry.Depreciation.Equal(amount(1_000_000)), "period %d depreciation %s", entry.Period, entry.Depreciation)
	}
	assert.True(t, schedule[11].Closing.IsZero())
}

func TestGenerateSchedule_StandardContract(t *testing.T) {
	schedule := lease.GenerateSchedule(standardContract())
	require.Len(t, schedule, 24)

	first := schedule[0]
	assert.True(t, first.PaymentDate.Equal(date(2024, time.January, 1)))
	assert.True(t, first.Opening.Equal(amount(22_562_866)))
	assert.True(t, first.Interest.Equal(amount(112_814)))
	assert.True(t, first.Principal.Equal(amount(887_186)))
	assert.True(t, first.Depreciation.Equal(amount(940_119)))

	last := schedule[23]
	assert.True(t, last.PaymentDate.Equal(date(2025, time.December, 1)))
	assert.True(t, last.Closing.IsZero(), "liability must decay to zero, got %s", last.Closing)
	assert.True(t, last.Depreciation.Equal(amount(940_129)), "final period absorbs the rounding drift, got %s", last.Depreciation)
}

func TestGenerateSchedule_BalanceLaw(t *testing.T) {
	// Every entry satisfies principal = payment - interest and
	// closing = max(0, opening - principal), with closing never negative.
	schedule := lease.GenerateSchedule(standardContract())

	for _, entry := range schedule {
		assert.True(t, entry.Principal.Equal(entry.Payment.Sub(entry.Interest)),
			"period %d principal split", entry.Period)

		expected := entry.Opening.Sub(entry.Principal)
		if expected.IsNegative() {
			expected = decimal.Zero
		}
		assert.True(t, entry.Closing.Equal(expected), "period %d closing", entry.Period)
		assert.False(t, entry.Closing.IsNegative(), "period %d closing negative", entry.Period)
	}
}

func TestGenerateSchedule_RoundingClosure(t *testing.T) {
	// The depreciation total equals the present value exactly, for both a
	// round and a drift-prone contract.
	contracts := map[string]lease.Contract{
		"standard":  standardContract(),
		"quarterly": quarterlyContract(),
		"zero rate": zeroRateContract(),
	}

	for name, c := range contracts {
		t.Run(name, func(t *testing.T) {
			schedule := lease.GenerateSchedule(c)
			pv := lease.PresentValue(c.MonthlyPayment, c.Start, c.End, c.AnnualRatePercent)

			total := decimal.Zero
			for _, entry := range schedule {
				total = total.Add(entry.Depreciation)
			}
			assert.True(t, total.Equal(pv), "sum(depreciation)=%s pv=%s", total, pv)
		})
	}
}

func TestGenerateSchedule_TruncatesAfterTermination(t *testing.T) {
	// GIVEN: The standard 24-month lease terminated on 2025-01-01
	// WHEN: Generating the schedule
	// THEN: Periods paying strictly after the termination date are dropped;
	//       the 2025-01-01 payment itself is kept

	schedule := lease.GenerateSchedule(terminatedContract())
	require.Len(t, schedule, 13)
	assert.True(t, schedule[12].PaymentDate.Equal(date(2025, time.January, 1)))
	assert.True(t, schedule[12].Closing.Equal(amount(10_677_027)))
}

func TestGenerateSchedule_EmptyWhenTerminationPrecedesFirstPayment(t *testing.T) {
	c := standardContract()
	termination := date(2023, time.December, 31)
	c.Termination = &termination

	assert.Empty(t, lease.GenerateSchedule(c))
}
