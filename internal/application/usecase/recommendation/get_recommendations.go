// Package recommendation contains the savings recommendation use case.
package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
)

// recentTransactionLimit caps how much history is handed to the advisor.
const recentTransactionLimit = 50

// GetRecommendationsInput represents the input for savings recommendations.
type GetRecommendationsInput struct {
	UserID uuid.UUID
}

// GetRecommendationsOutput represents the output of savings recommendations.
type GetRecommendationsOutput struct {
	Recommendations []string
}

// GetRecommendationsUseCase asks the advisor for savings tips based on the
// user's recent expenses.
type GetRecommendationsUseCase struct {
	transactionRepo adapter.TransactionRepository
	advisor         adapter.SavingsAdvisor
	clock           adapter.Clock
}

// NewGetRecommendationsUseCase creates a new GetRecommendationsUseCase instance.
func NewGetRecommendationsUseCase(
	transactionRepo adapter.TransactionRepository,
	advisor adapter.SavingsAdvisor,
	clock adapter.Clock,
) *GetRecommendationsUseCase {
	return &GetRecommendationsUseCase{
		transactionRepo: transactionRepo,
		advisor:         advisor,
		clock:           clock,
	}
}

// Execute gathers the last month of transactions and returns the advisor's
// recommendations. When no advisor is configured a static fallback is used.
func (uc *GetRecommendationsUseCase) Execute(ctx context.Context, input GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	if !uc.advisor.IsAvailable() {
		return &GetRecommendationsOutput{Recommendations: fallbackRecommendations()}, nil
	}

	now := uc.clock.Now()
	from := now.AddDate(0, -1, 0)
	limit := recentTransactionLimit

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &from,
		EndDate:   &now,
		Limit:     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	samples := make([]adapter.SpendingSample, 0, len(transactions))
	for _, txn := range transactions {
		samples = append(samples, adapter.SpendingSample{
			CategoryName: txn.Category.Name,
			Kind:         string(txn.Transaction.Kind),
			Amount:       txn.Transaction.Amount,
			Date:         txn.Transaction.Date.Format(time.DateOnly),
		})
	}

	recommendations, err := uc.advisor.Recommend(ctx, samples)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	return &GetRecommendationsOutput{Recommendations: recommendations}, nil
}

// fallbackRecommendations is returned when no AI provider is configured.
func fallbackRecommendations() []string {
	return []string{
		"Review your subscriptions and cancel the ones you no longer use.",
		"Set a weekly budget for dining out and track it closely.",
		"Automate a small transfer to your savings goals right after payday.",
	}
}
