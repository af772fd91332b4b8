/*
history.go - Draft persistence and bounded calculation history

PURPOSE:
  Two small collaborators over the KV interface:

  Drafts keeps the single in-progress input form under a fixed key so a
  client can resume where it left off.

  History keeps the most recent calculations, newest first, bounded to
  historyLimit entries with the oldest evicted. Entries are keyed by their
  creation timestamp (zero-padded unix nanos) so plain key order is
  chronological order.
*/
package lease

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	draftKey      = "draft:current"
	historyPrefix = "history:"
	historyLimit  = 10
)

// =============================================================================
// DRAFTS - Current form persistence
// =============================================================================

type Drafts struct {
	kv KV
}

func NewDrafts(kv KV) *Drafts {
	return &Drafts{kv: kv}
}

// Save persists the in-progress contract, replacing any previous draft.
func (d *Drafts) Save(ctx context.Context, c Contract) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return d.kv.Save(ctx, draftKey, string(payload))
}

// Load returns the saved draft, or ErrDraftNotFound when none exists.
func (d *Drafts) Load(ctx context.Context) (Contract, error) {
	payload, ok, err := d.kv.Load(ctx, draftKey)
	if err != nil {
		return Contract{}, err
	}
	if !ok {
		return Contract{}, ErrDraftNotFound
	}
	var c Contract
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return Contract{}, fmt.Errorf("decode draft: %w", err)
	}
	return c, nil
}

// Delete removes the saved draft, if any.
func (d *Drafts) Delete(ctx context.Context) error {
	return d.kv.Delete(ctx, draftKey)
}

// =============================================================================
// HISTORY - Bounded, newest-first calculation log
// =============================================================================

// HistoryEntry is one recorded calculation: the input terms plus the
// headline figures, enough to re-run or display without storing the full
// schedule and journal.
type HistoryEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Contract  Contract  `json:"contract"`
	Summary   Summary   `json:"summary"`
}

type History struct {
	kv    KV
	limit int
	now   func() time.Time
}

func NewHistory(kv KV) *History {
	return &History{kv: kv, limit: historyLimit, now: time.Now}
}

// NewHistoryWithClock injects the clock, for deterministic tests.
func NewHistoryWithClock(kv KV, now func() time.Time) *History {
	return &History{kv: kv, limit: historyLimit, now: now}
}

// Record appends a calculation and evicts the oldest entries beyond the
// bound. The entry key embeds the creation timestamp so eviction is a plain
// prefix scan.
func (h *History) Record(ctx context.Context, c Contract, s Summary) (HistoryEntry, error) {
	entry := HistoryEntry{
		ID:        uuid.NewString(),
		CreatedAt: h.now().UTC(),
		Contract:  c,
		Summary:   s,
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("encode history entry: %w", err)
	}

	key := fmt.Sprintf("%s%020d", historyPrefix, entry.CreatedAt.UnixNano())
	if err := h.kv.Save(ctx, key, string(payload)); err != nil {
		return HistoryEntry{}, err
	}
	return entry, h.evict(ctx)
}

// List returns the recorded calculations, newest first.
func (h *History) List(ctx context.Context) ([]HistoryEntry, error) {
	keys, err := h.historyKeys(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		payload, ok, err := h.kv.Load(ctx, keys[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var entry HistoryEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, fmt.Errorf("decode history entry %s: %w", keys[i], err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Remove deletes the entry with the given ID, or reports
// ErrHistoryEntryNotFound.
func (h *History) Remove(ctx context.Context, id string) error {
	keys, err := h.historyKeys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		payload, ok, err := h.kv.Load(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var entry HistoryEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			continue
		}
		if entry.ID == id {
			return h.kv.Delete(ctx, key)
		}
	}
	return ErrHistoryEntryNotFound
}

// Clear removes every history entry but leaves the draft untouched.
func (h *History) Clear(ctx context.Context) error {
	keys, err := h.historyKeys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := h.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (h *History) historyKeys(ctx context.Context) ([]string, error) {
	all, err := h.kv.Keys(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for _, key := range all {
		if strings.HasPrefix(key, historyPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (h *History) evict(ctx context.Context) error {
	keys, err := h.historyKeys(ctx)
	if err != nil {
		return err
	}
	for len(keys) > h.limit {
		if err := h.kv.Delete(ctx, keys[0]); err != nil {
			return err
		}
		keys = keys[1:]
	}
	return nil
}
