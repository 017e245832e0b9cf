// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// GetGoalInput represents the input for retrieving a single savings goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of retrieving a single savings goal.
type GetGoalOutput struct {
	Goal          *entity.SavingsGoal
	Contributions []*entity.Contribution
}

// GetGoalUseCase retrieves a goal with its contribution history, progress
// re-derived from the log.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"savings goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	sum, err := uc.goalRepo.SumContributions(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum contributions: %w", err)
	}
	goal.Progress = sum

	contributions, err := uc.goalRepo.ListContributions(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	return &GetGoalOutput{
		Goal:          goal,
		Contributions: contributions,
	}, nil
}
