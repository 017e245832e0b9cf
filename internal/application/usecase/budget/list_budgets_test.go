// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// stubCategoryRepo serves categories by ID and fails lookups on demand.
type stubCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	findErr    error
}

func (r *stubCategoryRepo) Create(context.Context, *entity.Category) error {
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if category, ok := r.categories[id]; ok {
		return category, nil
	}
	return nil, domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func (r *stubCategoryRepo) List(context.Context, *entity.CategoryKind) ([]*entity.Category, error) {
	return nil, nil
}

func (r *stubCategoryRepo) ExistsByName(context.Context, string) (bool, error) {
	return false, nil
}

func (r *stubCategoryRepo) IsReferenced(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (r *stubCategoryRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

func TestListBudgetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	newUseCase := func(budgetRepo *spentBudgetRepo, categoryRepo *stubCategoryRepo) *ListBudgetsUseCase {
		txnRepo := &sumTransactionRepo{sum: decimal.Zero}
		recompute := NewRecomputeSpentUseCase(txnRepo, budgetRepo, &fixedClock{now: now})
		return NewListBudgetsUseCase(budgetRepo, categoryRepo, recompute)
	}

	t.Run("attaches the category to each budget", func(t *testing.T) {
		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, entity.ClassificationNeed)
		budget := entity.NewBudget(userID, category.ID, decimal.NewFromInt(200), entity.BudgetRecurrenceMonthly)
		budgetRepo := &spentBudgetRepo{budgets: []*entity.Budget{budget}}
		categoryRepo := &stubCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}}

		output, err := newUseCase(budgetRepo, categoryRepo).Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(output.Budgets))
		}
		if output.Budgets[0].Category == nil || output.Budgets[0].Category.ID != category.ID {
			t.Error("expected the budget's category to be attached")
		}
	})

	t.Run("tolerates a missing category", func(t *testing.T) {
		budget := entity.NewBudget(userID, uuid.New(), decimal.NewFromInt(200), entity.BudgetRecurrenceMonthly)
		budgetRepo := &spentBudgetRepo{budgets: []*entity.Budget{budget}}
		categoryRepo := &stubCategoryRepo{}

		output, err := newUseCase(budgetRepo, categoryRepo).Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(output.Budgets))
		}
		if output.Budgets[0].Category != nil {
			t.Error("expected a nil category for a deleted category reference")
		}
	})

	t.Run("category store failure propagates", func(t *testing.T) {
		budget := entity.NewBudget(userID, uuid.New(), decimal.NewFromInt(200), entity.BudgetRecurrenceMonthly)
		budgetRepo := &spentBudgetRepo{budgets: []*entity.Budget{budget}}
		storeErr := errors.New("connection reset")
		categoryRepo := &stubCategoryRepo{findErr: storeErr}

		_, err := newUseCase(budgetRepo, categoryRepo).Execute(ctx, ListBudgetsInput{UserID: userID})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected the store error to propagate, got %v", err)
		}
	})
}
