// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// GetMonthSummaryInput represents the input for a month totals summary.
type GetMonthSummaryInput struct {
	UserID uuid.UUID
	Month  time.Time // Any instant inside the month
}

// GetMonthSummaryOutput represents the output of a month totals summary.
type GetMonthSummaryOutput struct {
	Totals *entity.MonthTotals
}

// GetMonthSummaryUseCase aggregates expense and income totals for one
// calendar month.
type GetMonthSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the totals for the month containing input.Month.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	loc := input.Month.Location()
	start := time.Date(input.Month.Year(), input.Month.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	totals, err := uc.transactionRepo.GetMonthTotals(ctx, input.UserID, start, end)
	if err != nil {
		return nil, err
	}

	return &GetMonthSummaryOutput{Totals: totals}, nil
}
