// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for savings goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles savings goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	markers  adapter.ReminderMarkerStore
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, markers adapter.ReminderMarkerStore) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		markers:  markers,
	}
}

// Execute performs the deletion. Removing the marker also neutralizes any
// reminder still pending for the goal: the deferred check finds no marker
// and suppresses itself.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return err
	}
	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"savings goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	if err := uc.markers.Delete(ctx, input.GoalID); err != nil {
		slog.Warn("Failed to delete reminder marker", "goal_id", input.GoalID, "error", err)
	}

	return nil
}
