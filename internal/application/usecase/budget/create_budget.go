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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Recurrence entity.BudgetRecurrence
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	recompute    *RecomputeSpentUseCase
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	recompute *RecomputeSpentUseCase,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		recompute:    recompute,
	}
}

// Execute performs the budget creation. The spent cache is recomputed
// immediately so a budget created mid-window starts with the real in-window
// sum instead of zero.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !isValidRecurrence(input.Recurrence) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetRecurrence,
			"recurrence must be 'weekly' or 'monthly'",
			domainerror.ErrInvalidBudgetRecurrence,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}

	exists, err := uc.budgetRepo.ExistsByCategoryAndRecurrence(ctx, input.UserID, input.CategoryID, input.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category and recurrence",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Recurrence)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	if _, err := uc.recompute.Execute(ctx, RecomputeSpentInput{Budget: budget}); err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// isValidRecurrence validates the budget recurrence.
func isValidRecurrence(recurrence entity.BudgetRecurrence) bool {
	return recurrence == entity.BudgetRecurrenceWeekly ||
		recurrence == entity.BudgetRecurrenceMonthly
}
