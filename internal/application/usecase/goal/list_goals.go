// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing savings goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing savings goals.
type ListGoalsOutput struct {
	Goals []*entity.SavingsGoal
}

// ListGoalsUseCase handles listing savings goals. Progress is re-derived
// from the contribution log on every listing; the cached column is only a
// convenience for single-goal reads that follow a fresh contribution.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing with recompute-before-display.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	for _, g := range goals {
		sum, err := uc.goalRepo.SumContributions(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum contributions for goal %s: %w", g.ID, err)
		}
		g.Progress = sum
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
