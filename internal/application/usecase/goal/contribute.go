// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// DefaultReminderDelay is how long a goal may sit idle before a reminder fires.
const DefaultReminderDelay = 7 * 24 * time.Hour

// ContributeInput represents the input for a goal contribution.
type ContributeInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeOutput represents the output of a goal contribution.
type ContributeOutput struct {
	Goal         *entity.SavingsGoal
	Contribution *entity.Contribution
}

// ContributeUseCase records a contribution, advances goal progress, and arms
// a deferred idle reminder.
//
// There is no durable cancellable timer. Cancellation is emulated with a
// last-write-wins marker: each contribution overwrites the goal's marker
// timestamp before arming its own deferred check, and the check delivers
// only if the marker still holds the timestamp it was armed with. A newer
// contribution therefore silently invalidates every older pending reminder,
// and at most one reminder is delivered per idle gap. A process restart
// drops pending checks; that loss is accepted as best-effort.
type ContributeUseCase struct {
	goalRepo      adapter.GoalRepository
	markers       adapter.ReminderMarkerStore
	preferences   adapter.PreferenceStore
	sink          adapter.NotificationSink
	clock         adapter.Clock
	scheduler     adapter.Scheduler
	reminderDelay time.Duration

	// Contributions to the same goal are serialized so the append,
	// increment and marker writes of two calls never interleave.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewContributeUseCase creates a new ContributeUseCase instance.
func NewContributeUseCase(
	goalRepo adapter.GoalRepository,
	markers adapter.ReminderMarkerStore,
	preferences adapter.PreferenceStore,
	sink adapter.NotificationSink,
	clock adapter.Clock,
	scheduler adapter.Scheduler,
	reminderDelay time.Duration,
) *ContributeUseCase {
	if reminderDelay <= 0 {
		reminderDelay = DefaultReminderDelay
	}
	return &ContributeUseCase{
		goalRepo:      goalRepo,
		markers:       markers,
		preferences:   preferences,
		sink:          sink,
		clock:         clock,
		scheduler:     scheduler,
		reminderDelay: reminderDelay,
		locks:         make(map[uuid.UUID]*sync.Mutex),
	}
}

// Execute performs the contribution. Steps run strictly in order: append the
// contribution and increment progress atomically, overwrite the reminder
// marker, then arm the deferred check. A failure at any step stops the
// sequence, so no reminder is ever armed for an uncommitted contribution.
func (uc *ContributeUseCase) Execute(ctx context.Context, input ContributeInput) (*ContributeOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContributionAmount,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

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

	lock := uc.lockFor(input.GoalID)
	lock.Lock()
	defer lock.Unlock()

	now := uc.clock.Now()
	contribution := entity.NewContribution(goal.ID, input.Amount, now)

	goal.Progress = goal.Progress.Add(input.Amount)
	goal.UpdatedAt = now

	if err := uc.goalRepo.AddContribution(ctx, goal, contribution); err != nil {
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	if err := uc.markers.Set(ctx, goal.ID, now); err != nil {
		return nil, fmt.Errorf("failed to set reminder marker: %w", err)
	}

	uc.armReminder(goal.ID, goal.UserID, goal.Name, now)

	return &ContributeOutput{
		Goal:         goal,
		Contribution: contribution,
	}, nil
}

// armReminder schedules the deferred marker check for armedAt + delay.
func (uc *ContributeUseCase) armReminder(goalID, userID uuid.UUID, goalName string, armedAt time.Time) {
	uc.scheduler.After(uc.reminderDelay, func() {
		uc.fireReminder(goalID, userID, goalName, armedAt)
	})
}

// fireReminder runs when the delay elapses. It delivers the reminder only if
// the marker still equals the timestamp this check was armed with and the
// user's goal notifications are enabled; otherwise it suppresses silently.
func (uc *ContributeUseCase) fireReminder(goalID, userID uuid.UUID, goalName string, armedAt time.Time) {
	ctx := context.Background()

	marker, ok, err := uc.markers.Get(ctx, goalID)
	if err != nil {
		slog.Error("Failed to read reminder marker", "goal_id", goalID, "error", err)
		return
	}
	if !ok || !marker.Equal(armedAt) {
		// A newer contribution superseded this reminder, or the goal is gone.
		return
	}

	enabled, err := uc.preferences.GetBool(ctx, userID, adapter.PrefGoalNotificationsEnabled)
	if err != nil {
		slog.Error("Failed to read goal notification preference", "goal_id", goalID, "error", err)
		return
	}
	if !enabled {
		return
	}

	uc.sink.Notify(ctx, entity.GoalReminderTitle, entity.GoalReminderBody(goalName))

	slog.Info("Goal reminder delivered", "goal_id", goalID)
}

// lockFor returns the mutex serializing contributions to one goal.
func (uc *ContributeUseCase) lockFor(goalID uuid.UUID) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, exists := uc.locks[goalID]
	if !exists {
		lock = &sync.Mutex{}
		uc.locks[goalID] = lock
	}
	return lock
}
