// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create creates a new savings goal in the database.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUserID retrieves all savings goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// Update updates a goal's name, target amount, target date and favorite flag.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// AddContribution atomically appends the contribution record and
	// increments the goal's progress. Either both writes commit or neither does.
	AddContribution(ctx context.Context, goal *entity.SavingsGoal, contribution *entity.Contribution) error

	// SumContributions returns the sum of all contribution amounts for a goal.
	// Progress must always equal this value; list paths re-derive it here.
	SumContributions(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error)

	// ListContributions retrieves a goal's contributions, newest first.
	ListContributions(ctx context.Context, goalID uuid.UUID) ([]*entity.Contribution, error)

	// Delete removes a savings goal and its contributions from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
