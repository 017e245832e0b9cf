// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithCategory
}

// ListBudgetsUseCase handles listing budgets logic. Every listed budget has
// its spent cache recomputed first: a cached value is stale the instant a
// transaction in its window changes, so display paths never trust it.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	recompute    *RecomputeSpentUseCase
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	recompute *RecomputeSpentUseCase,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		recompute:    recompute,
	}
}

// Execute performs the budget listing with recompute-before-display.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*entity.BudgetWithCategory, 0, len(budgets)),
	}

	for _, b := range budgets {
		if _, err := uc.recompute.Execute(ctx, RecomputeSpentInput{Budget: b}); err != nil {
			return nil, err
		}

		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			// A budget may outlive its category; anything else is a store error.
			if !errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, err
			}
			category = nil
		}

		output.Budgets = append(output.Budgets, &entity.BudgetWithCategory{
			Budget:   b,
			Category: category,
		})
	}

	return output, nil
}
