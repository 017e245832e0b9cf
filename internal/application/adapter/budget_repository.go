// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndCategory retrieves the budgets (at most one per
	// recurrence) for a user and category.
	FindByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]*entity.Budget, error)

	// ExistsByCategoryAndRecurrence checks the (category, recurrence)
	// uniqueness constraint for a user.
	ExistsByCategoryAndRecurrence(ctx context.Context, userID, categoryID uuid.UUID, recurrence entity.BudgetRecurrence) (bool, error)

	// Update updates a budget's ceiling, recurrence and favorite flag.
	Update(ctx context.Context, budget *entity.Budget) error

	// UpdateSpent persists a freshly recomputed spent value and updated_at
	// stamp as a single atomic statement. On error the prior value is retained.
	UpdateSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal, updatedAt time.Time) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
