// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Amount   *decimal.Decimal
	Favorite *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	recompute  *RecomputeSpentUseCase
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, recompute *RecomputeSpentUseCase) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		recompute:  recompute,
	}
}

// Execute performs the budget update and recomputes the spent cache, since a
// changed ceiling changes what the cached percentage means to the caller.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudget,
			"budget does not belong to user",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"budget amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.Favorite != nil {
		budget.Favorite = *input.Favorite
	}

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	if _, err := uc.recompute.Execute(ctx, RecomputeSpentInput{Budget: budget}); err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
