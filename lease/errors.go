/*
errors.go - Centralized error types for the lease engine

ERROR CATEGORIES:
  1. Input errors - contract field violations, collected by Validate and
     carried as a ValidationError (calculation never starts)
  2. Computation errors - states the validation gate should make
     unreachable, treated as hard stops by the caller
  3. Collaborator errors - storage/export failures, surfaced by the
     boundary packages and never retried by the engine

Every engine operation is a deterministic pure function, so retrying any of
these without changing the input is meaningless.
*/
package lease

import (
	"errors"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptySchedule is returned when the termination date precedes the
	// first payment date, leaving nothing to amortize.
	ErrEmptySchedule = errors.New("empty schedule: termination precedes first payment date")

	// ErrDraftNotFound is returned when no saved draft exists.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrHistoryEntryNotFound is returned when removing an unknown history entry.
	ErrHistoryEntryNotFound = errors.New("history entry not found")
)

// =============================================================================
// VALIDATION ERROR - Carries the full list of contract violations
// =============================================================================

// ValidationError aggregates every violation Validate found. Callers show
// the messages to the user; none of them is recoverable by retrying.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid contract: " + strings.Join(e.Messages, "; ")
}

// IsInputError reports whether the error stems from invalid contract input.
func IsInputError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
