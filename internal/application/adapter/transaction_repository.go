// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Kind       *entity.TransactionKind
	Limit      *int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// SumForCategoryInWindow sums transaction amounts for a category with
	// date inside the half-open interval [start, end).
	SumForCategoryInWindow(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// GetMonthTotals aggregates expense and income totals for the calendar
	// month described by [start, end).
	GetMonthTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MonthTotals, error)

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
