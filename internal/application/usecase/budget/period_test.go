// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/domain/entity"
)

func TestResolveWindow_Monthly(t *testing.T) {
	loc := time.UTC

	t.Run("window spans the calendar month", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 10, 30, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceMonthly, now)

		wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)
		wantEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, loc)

		if !window.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, window.Start)
		}
		if !window.End.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, window.End)
		}
	})

	t.Run("last second of a 31-day month is inside", func(t *testing.T) {
		now := time.Date(2025, time.January, 10, 0, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceMonthly, now)

		lastSecond := time.Date(2025, time.January, 31, 23, 59, 59, 0, loc)
		if !window.Contains(lastSecond) {
			t.Error("expected the last second of January to be inside the window")
		}
	})

	t.Run("first instant of the next month is outside", func(t *testing.T) {
		now := time.Date(2025, time.January, 10, 0, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceMonthly, now)

		nextMonth := time.Date(2025, time.February, 1, 0, 0, 0, 0, loc)
		if window.Contains(nextMonth) {
			t.Error("expected February 1st midnight to be outside January's window")
		}
	})

	t.Run("same month maps to the same window", func(t *testing.T) {
		first := ResolveWindow(entity.BudgetRecurrenceMonthly, time.Date(2025, time.June, 1, 0, 0, 0, 0, loc))
		last := ResolveWindow(entity.BudgetRecurrenceMonthly, time.Date(2025, time.June, 30, 23, 59, 59, 0, loc))

		if !first.Start.Equal(last.Start) || !first.End.Equal(last.End) {
			t.Error("expected both instants to resolve to the same monthly window")
		}
	})
}

func TestResolveWindow_Weekly(t *testing.T) {
	loc := time.UTC

	t.Run("week starts on Monday", func(t *testing.T) {
		// Wednesday, March 12 2025.
		now := time.Date(2025, time.March, 12, 14, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceWeekly, now)

		wantStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)
		if !window.Start.Equal(wantStart) {
			t.Errorf("expected Monday start %v, got %v", wantStart, window.Start)
		}
		if window.Start.Weekday() != time.Monday {
			t.Errorf("expected window to start on Monday, got %v", window.Start.Weekday())
		}
	})

	t.Run("Sunday belongs to the week that started the previous Monday", func(t *testing.T) {
		// Sunday, March 16 2025.
		now := time.Date(2025, time.March, 16, 23, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceWeekly, now)

		wantStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)
		if !window.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, window.Start)
		}
	})

	t.Run("Monday midnight starts a new week", func(t *testing.T) {
		now := time.Date(2025, time.March, 17, 0, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceWeekly, now)

		if !window.Start.Equal(now) {
			t.Errorf("expected window to start at %v, got %v", now, window.Start)
		}
	})

	t.Run("window is exactly seven days", func(t *testing.T) {
		now := time.Date(2025, time.March, 12, 14, 0, 0, 0, loc)
		window := ResolveWindow(entity.BudgetRecurrenceWeekly, now)

		if got := window.End.Sub(window.Start); got != 7*24*time.Hour {
			t.Errorf("expected a 7-day window, got %v", got)
		}
	})
}

func TestWindow_Contains(t *testing.T) {
	window := Window{
		Start: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("start is inside", func(t *testing.T) {
		if !window.Contains(window.Start) {
			t.Error("expected the window start to be contained")
		}
	})

	t.Run("end is outside", func(t *testing.T) {
		if window.Contains(window.End) {
			t.Error("expected the window end to be excluded")
		}
	})

	t.Run("instant before start is outside", func(t *testing.T) {
		if window.Contains(window.Start.Add(-time.Second)) {
			t.Error("expected an instant before the start to be excluded")
		}
	})
}
