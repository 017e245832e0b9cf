// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertKind represents the kind of budget alert decision.
type AlertKind string

const (
	// AlertKindWarning fires when spend reaches 90% of the budget ceiling
	// but has not yet exceeded it.
	AlertKindWarning AlertKind = "warning"
	// AlertKindExceeded fires when spend reaches or passes the ceiling.
	AlertKindExceeded AlertKind = "exceeded"
)

// BudgetAlert is the decision produced by evaluating a budget's spend
// against its ceiling. It carries everything needed to render the
// user-facing notification.
type BudgetAlert struct {
	Kind         AlertKind
	BudgetID     uuid.UUID
	CategoryName string
	Percent      decimal.Decimal // Spend as a percentage of the ceiling
}

// Title returns the notification title for the alert.
func (a *BudgetAlert) Title() string {
	if a.Kind == AlertKindExceeded {
		return fmt.Sprintf("Exceeded Budget for %s", a.CategoryName)
	}
	return "Warning!"
}

// Body returns the notification body for the alert.
func (a *BudgetAlert) Body() string {
	if a.Kind == AlertKindExceeded {
		return fmt.Sprintf("You've spent more than your allocated budget in the %s category.", a.CategoryName)
	}
	return fmt.Sprintf("You've spent %s%% of your budget in the %s category.", a.Percent.StringFixed(2), a.CategoryName)
}

// GoalReminderTitle is the notification title for idle-goal reminders.
const GoalReminderTitle = "Reminder"

// GoalReminderBody returns the notification body for an idle-goal reminder.
func GoalReminderBody(goalName string) string {
	return fmt.Sprintf("It's been a week since your last deposit for the goal %q. Keep going!", goalName)
}
