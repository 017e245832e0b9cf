// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRecurrence represents the rolling period a budget is measured over.
type BudgetRecurrence string

const (
	BudgetRecurrenceWeekly  BudgetRecurrence = "weekly"
	BudgetRecurrenceMonthly BudgetRecurrence = "monthly"
)

// Budget represents a spending ceiling for one category over a rolling
// period. At most one budget exists per (user, category, recurrence).
//
// Spent is a cached projection of the in-window transaction sum. It is never
// the source of truth: it goes stale the instant a transaction in its window
// is inserted or deleted, and callers must recompute it before display.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal // Target ceiling
	Spent      decimal.Decimal // Derived cache, see doc above
	Recurrence BudgetRecurrence
	Favorite   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity with a zero spent cache.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, recurrence BudgetRecurrence) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Spent:      decimal.Zero,
		Recurrence: recurrence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetWithCategory represents a budget with its associated category.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
