// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// RecomputeSpentInput represents the input for recomputing a budget's spent cache.
type RecomputeSpentInput struct {
	Budget *entity.Budget
}

// RecomputeSpentOutput represents the output of recomputing a budget's spent cache.
type RecomputeSpentOutput struct {
	Spent  decimal.Decimal
	Window Window
}

// RecomputeSpentUseCase re-derives a budget's spent value from the raw
// transaction log for the current window and persists it. The cached column
// is never trusted; this is the only path that writes it.
type RecomputeSpentUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	clock           adapter.Clock
}

// NewRecomputeSpentUseCase creates a new RecomputeSpentUseCase instance.
func NewRecomputeSpentUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
) *RecomputeSpentUseCase {
	return &RecomputeSpentUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		clock:           clock,
	}
}

// Execute performs the recompute. Expense and income transactions are summed
// identically: the budget's category already implies a kind. The spent write
// is a single atomic statement; on error the stored value is unchanged and
// the error propagates to the caller.
func (uc *RecomputeSpentUseCase) Execute(ctx context.Context, input RecomputeSpentInput) (*RecomputeSpentOutput, error) {
	now := uc.clock.Now()
	window := ResolveWindow(input.Budget.Recurrence, now)

	spent, err := uc.transactionRepo.SumForCategoryInWindow(
		ctx,
		input.Budget.UserID,
		input.Budget.CategoryID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions for budget %s: %w", input.Budget.ID, err)
	}

	if err := uc.budgetRepo.UpdateSpent(ctx, input.Budget.ID, spent, now); err != nil {
		return nil, fmt.Errorf("failed to persist spent for budget %s: %w", input.Budget.ID, err)
	}

	input.Budget.Spent = spent
	input.Budget.UpdatedAt = now

	return &RecomputeSpentOutput{
		Spent:  spent,
		Window: window,
	}, nil
}
