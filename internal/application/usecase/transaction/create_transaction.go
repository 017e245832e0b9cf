// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/application/usecase/budget"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Kind        entity.TransactionKind
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Alerts      []*entity.BudgetAlert
}

// CreateTransactionUseCase handles transaction creation logic. After the
// write it refreshes every budget of the affected category, so the spent
// cache and any threshold alerts reflect the new entry immediately.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	refreshBudgets  *budget.RefreshCategoryBudgetsUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	refreshBudgets *budget.RefreshCategoryBudgetsUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		refreshBudgets:  refreshBudgets,
	}
}

// Execute performs the transaction creation. Validation failures reject the
// input before anything is persisted.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !isValidKind(input.Kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	txn := entity.NewTransaction(
		input.UserID,
		input.CategoryID,
		input.Amount,
		input.Date,
		input.Description,
		input.Kind,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	refreshed, err := uc.refreshBudgets.Execute(ctx, budget.RefreshCategoryBudgetsInput{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction: txn,
		Alerts:      refreshed.Alerts,
	}, nil
}

// isValidKind validates the transaction kind.
func isValidKind(kind entity.TransactionKind) bool {
	return kind == entity.TransactionKindExpense || kind == entity.TransactionKindIncome
}
