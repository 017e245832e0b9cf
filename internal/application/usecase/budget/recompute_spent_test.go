// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// sumTransactionRepo serves a canned sum and records the window it was asked for.
type sumTransactionRepo struct {
	sum       decimal.Decimal
	sumErr    error
	gotUser   uuid.UUID
	gotCat    uuid.UUID
	gotStart  time.Time
	gotEnd    time.Time
	sumCalled bool
}

func (r *sumTransactionRepo) Create(context.Context, *entity.Transaction) error {
	return nil
}

func (r *sumTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *sumTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (r *sumTransactionRepo) SumForCategoryInWindow(_ context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	r.sumCalled = true
	r.gotUser = userID
	r.gotCat = categoryID
	r.gotStart = start
	r.gotEnd = end
	return r.sum, r.sumErr
}

func (r *sumTransactionRepo) GetMonthTotals(context.Context, uuid.UUID, time.Time, time.Time) (*entity.MonthTotals, error) {
	return nil, nil
}

func (r *sumTransactionRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

// spentBudgetRepo serves a canned budget list and records UpdateSpent calls.
type spentBudgetRepo struct {
	budgets      []*entity.Budget
	updateErr    error
	gotID        uuid.UUID
	gotSpent     decimal.Decimal
	gotUpdatedAt time.Time
	updateCalled bool
}

func (r *spentBudgetRepo) Create(context.Context, *entity.Budget) error {
	return nil
}

func (r *spentBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, errors.New("not implemented")
}

func (r *spentBudgetRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *spentBudgetRepo) FindByUserAndCategory(context.Context, uuid.UUID, uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}

func (r *spentBudgetRepo) ExistsByCategoryAndRecurrence(context.Context, uuid.UUID, uuid.UUID, entity.BudgetRecurrence) (bool, error) {
	return false, nil
}

func (r *spentBudgetRepo) Update(context.Context, *entity.Budget) error {
	return nil
}

func (r *spentBudgetRepo) UpdateSpent(_ context.Context, id uuid.UUID, spent decimal.Decimal, updatedAt time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updateCalled = true
	r.gotID = id
	r.gotSpent = spent
	r.gotUpdatedAt = updatedAt
	return nil
}

func (r *spentBudgetRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

func TestRecomputeSpentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("sums the current window and persists the result", func(t *testing.T) {
		txnRepo := &sumTransactionRepo{sum: decimal.RequireFromString("123.45")}
		budgetRepo := &spentBudgetRepo{}
		uc := NewRecomputeSpentUseCase(txnRepo, budgetRepo, &fixedClock{now: now})

		budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(500), entity.BudgetRecurrenceMonthly)
		budget.Spent = decimal.NewFromInt(999) // Stale cache, must be replaced.

		output, err := uc.Execute(ctx, RecomputeSpentInput{Budget: budget})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !txnRepo.sumCalled {
			t.Fatal("expected the transaction sum to be queried")
		}
		if txnRepo.gotUser != budget.UserID || txnRepo.gotCat != budget.CategoryID {
			t.Error("expected the sum to be scoped to the budget's user and category")
		}

		wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		if !txnRepo.gotStart.Equal(wantStart) || !txnRepo.gotEnd.Equal(wantEnd) {
			t.Errorf("expected window [%v, %v), got [%v, %v)", wantStart, wantEnd, txnRepo.gotStart, txnRepo.gotEnd)
		}

		if !budgetRepo.updateCalled {
			t.Fatal("expected the spent cache to be persisted")
		}
		if budgetRepo.gotID != budget.ID {
			t.Error("expected the update to target the budget")
		}
		if !budgetRepo.gotSpent.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("expected persisted spent 123.45, got %s", budgetRepo.gotSpent)
		}

		if !budget.Spent.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("expected the entity's spent to be refreshed, got %s", budget.Spent)
		}
		if !output.Spent.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("expected output spent 123.45, got %s", output.Spent)
		}
		if !output.Window.Start.Equal(wantStart) {
			t.Errorf("expected output window start %v, got %v", wantStart, output.Window.Start)
		}
	})

	t.Run("weekly budgets resolve a weekly window", func(t *testing.T) {
		txnRepo := &sumTransactionRepo{sum: decimal.Zero}
		budgetRepo := &spentBudgetRepo{}
		uc := NewRecomputeSpentUseCase(txnRepo, budgetRepo, &fixedClock{now: now})

		budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(100), entity.BudgetRecurrenceWeekly)

		if _, err := uc.Execute(ctx, RecomputeSpentInput{Budget: budget}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := txnRepo.gotEnd.Sub(txnRepo.gotStart); got != 7*24*time.Hour {
			t.Errorf("expected a 7-day window, got %v", got)
		}
		if txnRepo.gotStart.Weekday() != time.Monday {
			t.Errorf("expected the window to start on Monday, got %v", txnRepo.gotStart.Weekday())
		}
	})

	t.Run("sum failure leaves the cache untouched", func(t *testing.T) {
		txnRepo := &sumTransactionRepo{sumErr: errors.New("connection reset")}
		budgetRepo := &spentBudgetRepo{}
		uc := NewRecomputeSpentUseCase(txnRepo, budgetRepo, &fixedClock{now: now})

		budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(500), entity.BudgetRecurrenceMonthly)
		budget.Spent = decimal.NewFromInt(42)

		if _, err := uc.Execute(ctx, RecomputeSpentInput{Budget: budget}); err == nil {
			t.Fatal("expected an error")
		}
		if budgetRepo.updateCalled {
			t.Error("expected no persist after a sum failure")
		}
		if !budget.Spent.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected the entity's spent to be unchanged, got %s", budget.Spent)
		}
	})

	t.Run("persist failure propagates and leaves the entity untouched", func(t *testing.T) {
		txnRepo := &sumTransactionRepo{sum: decimal.NewFromInt(10)}
		budgetRepo := &spentBudgetRepo{updateErr: errors.New("deadlock")}
		uc := NewRecomputeSpentUseCase(txnRepo, budgetRepo, &fixedClock{now: now})

		budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(500), entity.BudgetRecurrenceMonthly)
		budget.Spent = decimal.NewFromInt(42)

		if _, err := uc.Execute(ctx, RecomputeSpentInput{Budget: budget}); err == nil {
			t.Fatal("expected an error")
		}
		if !budget.Spent.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected the entity's spent to be unchanged, got %s", budget.Spent)
		}
	})
}
