// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Recurrence string          `json:"recurrence" binding:"required,oneof=weekly monthly"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Favorite *bool            `json:"favorite,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	CategoryID string            `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Amount     decimal.Decimal   `json:"amount"`
	Spent      decimal.Decimal   `json:"spent"`
	Recurrence string            `json:"recurrence"`
	Favorite   bool              `json:"favorite"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount,
		Spent:      b.Spent,
		Recurrence: string(b.Recurrence),
		Favorite:   b.Favorite,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets with categories to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithCategory) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, bwc := range budgets {
		responses[i] = ToBudgetResponse(bwc.Budget)
		if bwc.Category != nil {
			category := ToCategoryResponse(bwc.Category)
			responses[i].Category = &category
		}
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
