// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// memoryGoalRepo is an in-memory goal repository for contribution tests.
type memoryGoalRepo struct {
	goals         map[uuid.UUID]*entity.SavingsGoal
	contributions []*entity.Contribution
	addErr        error
}

func newMemoryGoalRepo() *memoryGoalRepo {
	return &memoryGoalRepo{goals: make(map[uuid.UUID]*entity.SavingsGoal)}
}

func (r *memoryGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *memoryGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	goal, exists := r.goals[id]
	if !exists {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"savings goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	copied := *goal
	return &copied, nil
}

func (r *memoryGoalRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.SavingsGoal, error) {
	return nil, nil
}

func (r *memoryGoalRepo) Update(_ context.Context, goal *entity.SavingsGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *memoryGoalRepo) AddContribution(_ context.Context, goal *entity.SavingsGoal, contribution *entity.Contribution) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.contributions = append(r.contributions, contribution)
	r.goals[goal.ID] = goal
	return nil
}

func (r *memoryGoalRepo) SumContributions(_ context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, c := range r.contributions {
		if c.GoalID == goalID {
			sum = sum.Add(c.Amount)
		}
	}
	return sum, nil
}

func (r *memoryGoalRepo) ListContributions(_ context.Context, goalID uuid.UUID) ([]*entity.Contribution, error) {
	var result []*entity.Contribution
	for _, c := range r.contributions {
		if c.GoalID == goalID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

// memoryMarkerStore is an in-memory reminder marker store.
type memoryMarkerStore struct {
	markers map[uuid.UUID]time.Time
}

func newMemoryMarkerStore() *memoryMarkerStore {
	return &memoryMarkerStore{markers: make(map[uuid.UUID]time.Time)}
}

func (s *memoryMarkerStore) Set(_ context.Context, goalID uuid.UUID, ts time.Time) error {
	s.markers[goalID] = ts
	return nil
}

func (s *memoryMarkerStore) Get(_ context.Context, goalID uuid.UUID) (time.Time, bool, error) {
	ts, exists := s.markers[goalID]
	return ts, exists, nil
}

func (s *memoryMarkerStore) Delete(_ context.Context, goalID uuid.UUID) error {
	delete(s.markers, goalID)
	return nil
}

// stubPreferences reports stored values and defaults absent keys to true.
type stubPreferences struct {
	values map[string]bool
}

func newStubPreferences() *stubPreferences {
	return &stubPreferences{values: make(map[string]bool)}
}

func (p *stubPreferences) GetBool(_ context.Context, userID uuid.UUID, key string) (bool, error) {
	if value, exists := p.values[userID.String()+":"+key]; exists {
		return value, nil
	}
	return true, nil
}

func (p *stubPreferences) SetBool(_ context.Context, userID uuid.UUID, key string, value bool) error {
	p.values[userID.String()+":"+key] = value
	return nil
}

// captureSink records delivered notifications.
type captureSink struct {
	titles []string
	bodies []string
}

func (s *captureSink) Notify(_ context.Context, title, body string) {
	s.titles = append(s.titles, title)
	s.bodies = append(s.bodies, body)
}

// manualClock is a settable clock.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

// manualScheduler captures armed callbacks so tests fire them explicitly.
type manualScheduler struct {
	delays    []time.Duration
	callbacks []func()
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.callbacks = append(s.callbacks, fn)
}

type contributeFixture struct {
	uc        *ContributeUseCase
	repo      *memoryGoalRepo
	markers   *memoryMarkerStore
	prefs     *stubPreferences
	sink      *captureSink
	clock     *manualClock
	scheduler *manualScheduler
	goal      *entity.SavingsGoal
}

func newContributeFixture(t *testing.T) *contributeFixture {
	t.Helper()

	repo := newMemoryGoalRepo()
	markers := newMemoryMarkerStore()
	prefs := newStubPreferences()
	sink := &captureSink{}
	clock := &manualClock{now: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
	scheduler := &manualScheduler{}

	goal := entity.NewSavingsGoal(uuid.New(), "Trip to Japan", decimal.NewFromInt(5000), nil)
	if err := repo.Create(context.Background(), goal); err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}

	return &contributeFixture{
		uc:        NewContributeUseCase(repo, markers, prefs, sink, clock, scheduler, 7*24*time.Hour),
		repo:      repo,
		markers:   markers,
		prefs:     prefs,
		sink:      sink,
		clock:     clock,
		scheduler: scheduler,
		goal:      goal,
	}
}

func TestContributeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records the contribution and advances progress", func(t *testing.T) {
		f := newContributeFixture(t)

		output, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID,
			GoalID: f.goal.ID,
			Amount: decimal.NewFromInt(250),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.Progress.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected progress 250, got %s", output.Goal.Progress)
		}
		if !output.Contribution.Amount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected contribution amount 250, got %s", output.Contribution.Amount)
		}
		if len(f.repo.contributions) != 1 {
			t.Fatalf("expected one stored contribution, got %d", len(f.repo.contributions))
		}

		sum, _ := f.repo.SumContributions(ctx, f.goal.ID)
		if !output.Goal.Progress.Equal(sum) {
			t.Errorf("expected progress to equal the contribution sum, got %s vs %s", output.Goal.Progress, sum)
		}
	})

	t.Run("overwrites the reminder marker and arms the check", func(t *testing.T) {
		f := newContributeFixture(t)

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		marker, ok, _ := f.markers.Get(ctx, f.goal.ID)
		if !ok {
			t.Fatal("expected the marker to be set")
		}
		if !marker.Equal(f.clock.now) {
			t.Errorf("expected marker %v, got %v", f.clock.now, marker)
		}

		if len(f.scheduler.callbacks) != 1 {
			t.Fatalf("expected one armed check, got %d", len(f.scheduler.callbacks))
		}
		if f.scheduler.delays[0] != 7*24*time.Hour {
			t.Errorf("expected a 7-day delay, got %v", f.scheduler.delays[0])
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		f := newContributeFixture(t)

		_, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.Zero,
		})
		if err == nil {
			t.Fatal("expected an error")
		}

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidContributionAmount {
			t.Errorf("expected invalid contribution amount error, got %v", err)
		}
		if len(f.scheduler.callbacks) != 0 {
			t.Error("expected no reminder armed for a rejected contribution")
		}
	})

	t.Run("rejects a contribution to another user's goal", func(t *testing.T) {
		f := newContributeFixture(t)

		_, err := f.uc.Execute(ctx, ContributeInput{
			UserID: uuid.New(), GoalID: f.goal.ID, Amount: decimal.NewFromInt(50),
		})
		if err == nil {
			t.Fatal("expected an error")
		}

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeUnauthorizedGoalAccess {
			t.Errorf("expected unauthorized goal access error, got %v", err)
		}
	})

	t.Run("a failed append arms nothing", func(t *testing.T) {
		f := newContributeFixture(t)
		f.repo.addErr = errors.New("disk full")

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err == nil {
			t.Fatal("expected an error")
		}

		if _, ok, _ := f.markers.Get(ctx, f.goal.ID); ok {
			t.Error("expected no marker for an uncommitted contribution")
		}
		if len(f.scheduler.callbacks) != 0 {
			t.Error("expected no reminder armed for an uncommitted contribution")
		}
	})
}

func TestContributeUseCase_Reminder(t *testing.T) {
	ctx := context.Background()

	t.Run("fires when the goal stayed idle", func(t *testing.T) {
		f := newContributeFixture(t)

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The delay elapses with no further contributions.
		f.scheduler.callbacks[0]()

		if len(f.sink.titles) != 1 {
			t.Fatalf("expected one reminder, got %d", len(f.sink.titles))
		}
		if f.sink.titles[0] != entity.GoalReminderTitle {
			t.Errorf("expected title %q, got %q", entity.GoalReminderTitle, f.sink.titles[0])
		}
		if want := entity.GoalReminderBody("Trip to Japan"); f.sink.bodies[0] != want {
			t.Errorf("expected body %q, got %q", want, f.sink.bodies[0])
		}
	})

	t.Run("a newer contribution cancels the older pending reminder", func(t *testing.T) {
		f := newContributeFixture(t)

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A day later another contribution arrives.
		f.clock.now = f.clock.now.Add(24 * time.Hour)
		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(50),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(f.scheduler.callbacks) != 2 {
			t.Fatalf("expected two armed checks, got %d", len(f.scheduler.callbacks))
		}

		// The first check fires: it was armed with a superseded timestamp.
		f.scheduler.callbacks[0]()
		if len(f.sink.titles) != 0 {
			t.Fatalf("expected the superseded reminder to be suppressed, got %v", f.sink.titles)
		}

		// The second check fires: the marker still matches.
		f.scheduler.callbacks[1]()
		if len(f.sink.titles) != 1 {
			t.Errorf("expected exactly one reminder, got %d", len(f.sink.titles))
		}
	})

	t.Run("a deleted marker suppresses the reminder", func(t *testing.T) {
		f := newContributeFixture(t)

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The goal is deleted before the delay elapses.
		if err := f.markers.Delete(ctx, f.goal.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.scheduler.callbacks[0]()
		if len(f.sink.titles) != 0 {
			t.Errorf("expected no reminder for a deleted goal, got %v", f.sink.titles)
		}
	})

	t.Run("disabled goal notifications suppress delivery", func(t *testing.T) {
		f := newContributeFixture(t)

		if _, err := f.uc.Execute(ctx, ContributeInput{
			UserID: f.goal.UserID, GoalID: f.goal.ID, Amount: decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.prefs.SetBool(ctx, f.goal.UserID, "goalNotificationsEnabled", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.scheduler.callbacks[0]()
		if len(f.sink.titles) != 0 {
			t.Errorf("expected no reminder when notifications are disabled, got %v", f.sink.titles)
		}
	})
}
