// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (expense or income).
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// Transaction represents a single ledger entry. Transactions are write-once:
// they are created, optionally deleted, and never updated.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal // Always positive; Kind carries the sign semantics
	Date        time.Time
	Description string
	Kind        TransactionKind
	CreatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	kind TransactionKind,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: description,
		Kind:        kind,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// MonthTotals represents aggregated totals for a calendar month.
type MonthTotals struct {
	TotalExpenses decimal.Decimal
	TotalIncome   decimal.Decimal
}
