package lease

// =============================================================================
// VALIDATION GATE - Runs before any calculation
// =============================================================================

// Validate checks a contract for completeness and consistency. It collects
// every violation instead of stopping at the first one and returns the list
// of human-readable messages, empty if the contract is valid. The input is
// never mutated and nothing is raised; the caller decides whether to proceed.
func Validate(c Contract) []string {
	var messages []string

	if c.Start.IsZero() {
		messages = append(messages, "start date is required")
	}
	if c.End.IsZero() {
		messages = append(messages, "end date is required")
	}
	if !c.Start.IsZero() && !c.End.IsZero() && c.Start.After(c.End) {
		messages = append(messages, "start date must be on or before end date")
	}
	if !c.AnnualRatePercent.IsPositive() {
		messages = append(messages, "annual interest rate must be greater than zero")
	}
	if !c.MonthlyPayment.IsPositive() {
		messages = append(messages, "monthly payment must be greater than zero")
	}
	if c.Termination != nil && !c.End.IsZero() && c.Termination.After(c.End) {
		messages = append(messages, "termination date must be on or before end date")
	}
	if !c.Frequency.Valid() {
		messages = append(messages, "reporting frequency must be monthly or quarterly")
	}

	return messages
}
