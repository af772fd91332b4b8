/*
store.go - Key-value persistence interface for drafts and history

PURPOSE:
  The engine itself is pure and never touches storage. Drafts (the current
  input form) and the bounded calculation history live behind this small
  key-value interface so the computation layer stays referentially
  transparent and trivially testable.

IMPLEMENTATIONS:
  - lease/store/memory.go: In-memory, for testing/dev
  - store/sqlite/sqlite.go: Embedded SQLite
  - store/redis/redis.go:   Redis

A storage failure never corrupts or retries a computation; callers keep the
already-computed result available for re-export.
*/
package lease

import "context"

// KV is the persistence contract for drafts and calculation history.
// Values are opaque strings (JSON in practice).
type KV interface {
	// Save stores value under key, overwriting any previous value.
	Save(ctx context.Context, key, value string) error

	// Load returns the value for key and whether it exists.
	Load(ctx context.Context, key string) (string, bool, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
