// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
	Kind        string          `json:"kind" binding:"required,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Kind        string            `json:"kind"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// BudgetAlertResponse represents a budget threshold alert in API responses.
type BudgetAlertResponse struct {
	Kind         string          `json:"kind"`
	BudgetID     string          `json:"budget_id"`
	CategoryName string          `json:"category_name"`
	Percent      decimal.Decimal `json:"percent"`
	Title        string          `json:"title"`
	Body         string          `json:"body"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction TransactionResponse   `json:"transaction"`
	Alerts      []BudgetAlertResponse `json:"alerts"`
}

// DeleteTransactionResponse represents the response for transaction deletion.
type DeleteTransactionResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
}

// MonthSummaryResponse represents the response for a month totals summary.
type MonthSummaryResponse struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		CategoryID:  t.CategoryID.String(),
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		Kind:        string(t.Kind),
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionListResponse converts transactions with categories to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, twc := range transactions {
		responses[i] = ToTransactionResponse(twc.Transaction)
		if twc.Category != nil {
			category := ToCategoryResponse(twc.Category)
			responses[i].Category = &category
		}
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}

// ToBudgetAlertResponses converts budget alerts to their response DTOs.
func ToBudgetAlertResponses(alerts []*entity.BudgetAlert) []BudgetAlertResponse {
	responses := make([]BudgetAlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = BudgetAlertResponse{
			Kind:         string(alert.Kind),
			BudgetID:     alert.BudgetID.String(),
			CategoryName: alert.CategoryName,
			Percent:      alert.Percent,
			Title:        alert.Title(),
			Body:         alert.Body(),
		}
	}
	return responses
}
