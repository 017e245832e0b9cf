// Package budget contains budget-related use cases.
package budget

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/domain/entity"
)

// crossingEntry records the last alert emitted for a budget and the window
// it was emitted in.
type crossingEntry struct {
	windowStart time.Time
	kind        entity.AlertKind
}

// CrossingTracker remembers the last alert kind emitted per budget per
// window, so re-evaluating an unchanged spend does not re-fire the same
// alert. State is in-process only: it tracks UI-event dedupe, not durable
// data, and resets with the process like the window itself eventually does.
type CrossingTracker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]crossingEntry
}

// NewCrossingTracker creates a new CrossingTracker instance.
func NewCrossingTracker() *CrossingTracker {
	return &CrossingTracker{
		entries: make(map[uuid.UUID]crossingEntry),
	}
}

// Last returns the alert kind last emitted for the budget within the window
// starting at windowStart. ok is false when nothing was emitted for that
// window yet.
func (t *CrossingTracker) Last(budgetID uuid.UUID, windowStart time.Time) (entity.AlertKind, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.entries[budgetID]
	if !exists || !entry.windowStart.Equal(windowStart) {
		return "", false
	}
	return entry.kind, true
}

// Mark records that an alert of the given kind was emitted for the budget's
// window. A mark for a newer window replaces the older one.
func (t *CrossingTracker) Mark(budgetID uuid.UUID, windowStart time.Time, kind entity.AlertKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[budgetID] = crossingEntry{windowStart: windowStart, kind: kind}
}

// Clear drops the budget's entry, used when the budget is deleted.
func (t *CrossingTracker) Clear(budgetID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, budgetID)
}
