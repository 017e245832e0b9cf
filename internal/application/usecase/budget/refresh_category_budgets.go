// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// RefreshCategoryBudgetsInput represents the input for a category-wide refresh.
type RefreshCategoryBudgetsInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// RefreshCategoryBudgetsOutput represents the output of a category-wide refresh.
type RefreshCategoryBudgetsOutput struct {
	Alerts []*entity.BudgetAlert
}

// RefreshCategoryBudgetsUseCase recomputes every budget tracking a category
// (weekly and monthly both, if present) and runs the threshold notifier on
// each fresh result. Transaction create/delete paths call this so the spent
// cache never stays stale past a mutation.
type RefreshCategoryBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	recompute    *RecomputeSpentUseCase
	notifier     *ThresholdNotifier
}

// NewRefreshCategoryBudgetsUseCase creates a new RefreshCategoryBudgetsUseCase instance.
func NewRefreshCategoryBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	recompute *RecomputeSpentUseCase,
	notifier *ThresholdNotifier,
) *RefreshCategoryBudgetsUseCase {
	return &RefreshCategoryBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		recompute:    recompute,
		notifier:     notifier,
	}
}

// Execute performs the refresh. Budgets are processed sequentially; the
// first persistence error aborts and propagates.
func (uc *RefreshCategoryBudgetsUseCase) Execute(ctx context.Context, input RefreshCategoryBudgetsInput) (*RefreshCategoryBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserAndCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budgets for category: %w", err)
	}
	if len(budgets) == 0 {
		return &RefreshCategoryBudgetsOutput{}, nil
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	output := &RefreshCategoryBudgetsOutput{}
	for _, b := range budgets {
		recomputed, err := uc.recompute.Execute(ctx, RecomputeSpentInput{Budget: b})
		if err != nil {
			return nil, err
		}

		evaluated, err := uc.notifier.Evaluate(ctx, EvaluateInput{
			Budget:   b,
			Category: category,
			Spent:    recomputed.Spent,
			Window:   recomputed.Window,
		})
		if err != nil {
			return nil, err
		}
		if evaluated.Alert != nil {
			output.Alerts = append(output.Alerts, evaluated.Alert)
		}
	}

	return output, nil
}
