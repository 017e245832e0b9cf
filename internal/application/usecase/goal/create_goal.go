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

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must not be empty",
			domainerror.ErrInvalidGoalName,
		)
	}

	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, strings.TrimSpace(input.Name), input.TargetAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
