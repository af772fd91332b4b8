package lease_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/lease-engine/lease"
)

func TestValidate_ValidContract(t *testing.T) {
	assert.Empty(t, lease.Validate(standardContract()))
	assert.Empty(t, lease.Validate(terminatedContract()))
	assert.Empty(t, lease.Validate(quarterlyContract()))
}

func TestValidate_StartAfterEnd(t *testing.T) {
	// GIVEN: A contract whose start date falls after its end date
	// WHEN: Validating
	// THEN: The ordering violation is reported; nothing else runs on it

	c := standardContract()
	c.Start = date(2026, time.January, 1)

	messages := lease.Validate(c)
	assert.Contains(t, messages, "start date must be on or before end date")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	// An empty contract violates every rule at once; the validator reports
	// them all instead of stopping at the first.
	messages := lease.Validate(lease.Contract{})

	assert.Contains(t, messages, "start date is required")
	assert.Contains(t, messages, "end date is required")
	assert.Contains(t, messages, "annual interest rate must be greater than zero")
	assert.Contains(t, messages, "monthly payment must be greater than zero")
	assert.Contains(t, messages, "reporting frequency must be monthly or quarterly")
}

func TestValidate_NonPositiveFields(t *testing.T) {
	c := standardContract()
	c.AnnualRatePercent = amount(0)
	assert.Contains(t, lease.Validate(c), "annual interest rate must be greater than zero")

	c = standardContract()
	c.MonthlyPayment = amount(-5)
	assert.Contains(t, lease.Validate(c), "monthly payment must be greater than zero")
}

func TestValidate_TerminationAfterEnd(t *testing.T) {
	c := standardContract()
	termination := date(2026, time.June, 1)
	c.Termination = &termination

	assert.Contains(t, lease.Validate(c), "termination date must be on or before end date")
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	c := standardContract()
	before := c
	lease.Validate(c)
	assert.Equal(t, before, c)
}
