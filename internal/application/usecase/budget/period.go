// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/centsible/backend/internal/domain/entity"
)

// Window is the half-open interval [Start, End) a budget's spend is measured
// over. A transaction dated exactly at End falls in the next window.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ResolveWindow maps a recurrence and an instant to the calendar window
// containing that instant. Weeks start on Monday; the same instant always
// maps to the same window. Pure function, no side effects.
func ResolveWindow(recurrence entity.BudgetRecurrence, now time.Time) Window {
	loc := now.Location()

	switch recurrence {
	case entity.BudgetRecurrenceWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday is 7
		}
		start := time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	}
}
