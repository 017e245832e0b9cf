// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	query = query.Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}

	query = query.Preload("Category").Order("date DESC, created_at DESC")
	if filter.Limit != nil {
		query = query.Limit(*filter.Limit)
	}

	var transactionModels []model.TransactionModel
	result := query.Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// SumForCategoryInWindow sums transaction amounts for a category with date
// inside the half-open interval [start, end). The sum is category-scoped,
// not kind-scoped: expense and income rows count identically, the category
// already implies a kind. Soft-deleted rows are excluded by gorm's default
// scope, so deletions flow through here automatically.
func (r *transactionRepository) SumForCategoryInWindow(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Where("date >= ? AND date < ?", start, end).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	return row.Total, nil
}

// GetMonthTotals aggregates expense and income totals for the calendar month
// described by [start, end).
func (r *transactionRepository) GetMonthTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MonthTotals, error) {
	base := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Where("date >= ? AND date < ?", start, end)

	var expenseRow struct {
		Total decimal.Decimal
	}
	result := base.Session(&gorm.Session{}).
		Where("kind = ?", string(entity.TransactionKindExpense)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&expenseRow)
	if result.Error != nil {
		return nil, result.Error
	}

	var incomeRow struct {
		Total decimal.Decimal
	}
	result = base.Session(&gorm.Session{}).
		Where("kind = ?", string(entity.TransactionKindIncome)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&incomeRow)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.MonthTotals{
		TotalExpenses: expenseRow.Total,
		TotalIncome:   incomeRow.Total,
	}, nil
}

// Delete soft-deletes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
