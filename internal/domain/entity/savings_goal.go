// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a target amount the user is saving toward.
//
// Progress only moves through contributions and must always equal the sum of
// the goal's contribution amounts. List paths recompute it from the
// contribution log rather than trusting the cached column.
type SavingsGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Progress     decimal.Decimal
	TargetDate   *time.Time
	Favorite     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity with zero progress.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate *time.Time) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		Progress:     decimal.Zero,
		TargetDate:   targetDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Contribution is an append-only record of a single increment to a goal's
// progress. Contributions are never updated.
type Contribution struct {
	ID     uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

// NewContribution creates a new Contribution entity.
func NewContribution(goalID uuid.UUID, amount decimal.Decimal, date time.Time) *Contribution {
	return &Contribution{
		ID:     uuid.New(),
		GoalID: goalID,
		Amount: amount,
		Date:   date,
	}
}
