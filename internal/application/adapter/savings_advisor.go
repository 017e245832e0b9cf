// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SpendingSample is one recent transaction handed to the advisor.
type SpendingSample struct {
	CategoryName string
	Kind         string
	Amount       decimal.Decimal
	Date         string // YYYY-MM-DD
}

// SavingsAdvisor produces personalized savings recommendations from recent
// spending. Implementations may be unavailable (no API key configured).
type SavingsAdvisor interface {
	// IsAvailable reports whether the advisor is configured.
	IsAvailable() bool

	// Recommend returns short recommendation sentences for the samples.
	Recommend(ctx context.Context, samples []SpendingSample) ([]string, error)
}
