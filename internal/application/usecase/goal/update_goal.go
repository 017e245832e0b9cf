// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for savings goal update. Nil fields
// are left unchanged. Progress is deliberately absent: it only moves through
// contributions.
type UpdateGoalInput struct {
	UserID       uuid.UUID
	GoalID       uuid.UUID
	Name         *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
	Favorite     *bool
}

// UpdateGoalOutput represents the output of savings goal update.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles savings goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalName,
				"goal name must not be empty",
				domainerror.ErrInvalidGoalName,
			)
		}
		goal.Name = strings.TrimSpace(*input.Name)
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}

	if input.Favorite != nil {
		goal.Favorite = *input.Favorite
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
