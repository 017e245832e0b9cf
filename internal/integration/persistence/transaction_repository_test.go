// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/centsible/backend/internal/domain/entity"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTransaction(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, amount string, date time.Time, kind entity.TransactionKind) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(userID, categoryID, decimal.RequireFromString(amount), date, "seed", kind)
	if err := db.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}

func TestTransactionRepository_SumForCategoryInWindow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("expense and income rows count identically", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		categoryID := uuid.New()

		seedTransaction(t, db, userID, categoryID, "100", start.AddDate(0, 0, 5), entity.TransactionKindExpense)
		seedTransaction(t, db, userID, categoryID, "50", start.AddDate(0, 0, 10), entity.TransactionKindIncome)

		sum, err := repo.SumForCategoryInWindow(ctx, userID, categoryID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected sum 150, got %s", sum)
		}
	})

	t.Run("scoped to the user and category", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		categoryID := uuid.New()

		seedTransaction(t, db, userID, categoryID, "100", start.AddDate(0, 0, 5), entity.TransactionKindExpense)
		seedTransaction(t, db, userID, uuid.New(), "30", start.AddDate(0, 0, 5), entity.TransactionKindExpense)
		seedTransaction(t, db, uuid.New(), categoryID, "40", start.AddDate(0, 0, 5), entity.TransactionKindExpense)

		sum, err := repo.SumForCategoryInWindow(ctx, userID, categoryID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected sum 100, got %s", sum)
		}
	})

	t.Run("window bounds are half-open", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		categoryID := uuid.New()

		seedTransaction(t, db, userID, categoryID, "10", start, entity.TransactionKindExpense)
		seedTransaction(t, db, userID, categoryID, "20", end.Add(-time.Second), entity.TransactionKindExpense)
		seedTransaction(t, db, userID, categoryID, "40", end, entity.TransactionKindExpense)

		sum, err := repo.SumForCategoryInWindow(ctx, userID, categoryID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected sum 30, got %s", sum)
		}
	})

	t.Run("soft-deleted rows do not count", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		userID := uuid.New()
		categoryID := uuid.New()

		seedTransaction(t, db, userID, categoryID, "100", start.AddDate(0, 0, 5), entity.TransactionKindExpense)
		deleted := seedTransaction(t, db, userID, categoryID, "60", start.AddDate(0, 0, 6), entity.TransactionKindExpense)

		if err := repo.Delete(ctx, deleted.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum, err := repo.SumForCategoryInWindow(ctx, userID, categoryID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected sum 100, got %s", sum)
		}
	})

	t.Run("empty window sums to zero", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)

		sum, err := repo.SumForCategoryInWindow(ctx, uuid.New(), uuid.New(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.Zero) {
			t.Errorf("expected sum 0, got %s", sum)
		}
	})
}
