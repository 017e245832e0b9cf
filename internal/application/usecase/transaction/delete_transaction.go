// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/application/usecase/budget"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Alerts []*entity.BudgetAlert
}

// DeleteTransactionUseCase handles transaction deletion logic. Like
// creation, deletion invalidates the spent cache of the category's budgets,
// so they are refreshed afterwards.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	refreshBudgets  *budget.RefreshCategoryBudgetsUseCase
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	refreshBudgets *budget.RefreshCategoryBudgetsUseCase,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		refreshBudgets:  refreshBudgets,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	refreshed, err := uc.refreshBudgets.Execute(ctx, budget.RefreshCategoryBudgetsInput{
		UserID:     input.UserID,
		CategoryID: txn.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTransactionOutput{Alerts: refreshed.Alerts}, nil
}
