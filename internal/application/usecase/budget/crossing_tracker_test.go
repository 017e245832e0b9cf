// Package budget contains budget-related use cases.
package budget

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/domain/entity"
)

func TestCrossingTracker(t *testing.T) {
	tracker := NewCrossingTracker()
	budgetID := uuid.New()
	windowStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Last returns false when nothing was marked", func(t *testing.T) {
		if _, seen := tracker.Last(budgetID, windowStart); seen {
			t.Error("expected Last to return false for an unmarked budget")
		}
	})

	t.Run("Mark records the emitted kind", func(t *testing.T) {
		tracker.Mark(budgetID, windowStart, entity.AlertKindWarning)

		kind, seen := tracker.Last(budgetID, windowStart)
		if !seen {
			t.Fatal("expected Last to return true after Mark")
		}
		if kind != entity.AlertKindWarning {
			t.Errorf("expected kind %s, got %s", entity.AlertKindWarning, kind)
		}
	})

	t.Run("Mark overwrites the previous kind", func(t *testing.T) {
		tracker.Mark(budgetID, windowStart, entity.AlertKindExceeded)

		kind, seen := tracker.Last(budgetID, windowStart)
		if !seen {
			t.Fatal("expected Last to return true after Mark")
		}
		if kind != entity.AlertKindExceeded {
			t.Errorf("expected kind %s, got %s", entity.AlertKindExceeded, kind)
		}
	})

	t.Run("a mark for an older window is not visible in a newer one", func(t *testing.T) {
		nextWindow := windowStart.AddDate(0, 1, 0)
		if _, seen := tracker.Last(budgetID, nextWindow); seen {
			t.Error("expected a new window to start with no recorded crossing")
		}
	})

	t.Run("a mark for a newer window replaces the older one", func(t *testing.T) {
		nextWindow := windowStart.AddDate(0, 1, 0)
		tracker.Mark(budgetID, nextWindow, entity.AlertKindWarning)

		if _, seen := tracker.Last(budgetID, windowStart); seen {
			t.Error("expected the older window's mark to be gone")
		}
		if kind, seen := tracker.Last(budgetID, nextWindow); !seen || kind != entity.AlertKindWarning {
			t.Errorf("expected warning in the newer window, got %q seen=%v", kind, seen)
		}
	})

	t.Run("Clear drops the entry", func(t *testing.T) {
		tracker.Clear(budgetID)

		nextWindow := windowStart.AddDate(0, 1, 0)
		if _, seen := tracker.Last(budgetID, nextWindow); seen {
			t.Error("expected Last to return false after Clear")
		}
	})

	t.Run("Clear on an unknown budget does not panic", func(t *testing.T) {
		tracker.Clear(uuid.New())
	})

	t.Run("tracking is budget-specific", func(t *testing.T) {
		budget1 := uuid.New()
		budget2 := uuid.New()

		tracker.Mark(budget1, windowStart, entity.AlertKindWarning)

		if _, seen := tracker.Last(budget2, windowStart); seen {
			t.Error("expected budget2 to have no recorded crossing")
		}
	})
}

func TestCrossingTracker_ConcurrentAccess(t *testing.T) {
	tracker := NewCrossingTracker()
	windowStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		budgetID := uuid.New()
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Mark(budgetID, windowStart, entity.AlertKindWarning)
			tracker.Last(budgetID, windowStart)
			tracker.Mark(budgetID, windowStart, entity.AlertKindExceeded)
			tracker.Clear(budgetID)
		}()
	}
	wg.Wait()
}
