// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// fakePreferences is an in-memory preference store. Absent keys report true.
type fakePreferences struct {
	values map[string]bool
}

func newFakePreferences() *fakePreferences {
	return &fakePreferences{values: make(map[string]bool)}
}

func (p *fakePreferences) GetBool(_ context.Context, userID uuid.UUID, key string) (bool, error) {
	if value, exists := p.values[userID.String()+":"+key]; exists {
		return value, nil
	}
	return true, nil
}

func (p *fakePreferences) SetBool(_ context.Context, userID uuid.UUID, key string, value bool) error {
	p.values[userID.String()+":"+key] = value
	return nil
}

// recordingSink captures delivered notifications.
type recordingSink struct {
	titles []string
	bodies []string
}

func (s *recordingSink) Notify(_ context.Context, title, body string) {
	s.titles = append(s.titles, title)
	s.bodies = append(s.bodies, body)
}

func TestDecide(t *testing.T) {
	amount := decimal.NewFromInt(200)

	tests := []struct {
		name     string
		spent    decimal.Decimal
		wantKind entity.AlertKind
		wantOK   bool
	}{
		{"below the warning band", decimal.NewFromInt(100), "", false},
		{"just under ninety percent", decimal.RequireFromString("179.99"), "", false},
		{"exactly ninety percent", decimal.NewFromInt(180), entity.AlertKindWarning, true},
		{"inside the warning band", decimal.NewFromInt(199), entity.AlertKindWarning, true},
		{"exactly at the ceiling", decimal.NewFromInt(200), entity.AlertKindExceeded, true},
		{"past the ceiling", decimal.NewFromInt(205), entity.AlertKindExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := Decide(amount, tt.spent)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, kind)
			}
		})
	}

	t.Run("zero ceiling never decides", func(t *testing.T) {
		if _, ok := Decide(decimal.Zero, decimal.NewFromInt(50)); ok {
			t.Error("expected no decision for a zero ceiling")
		}
	})

	t.Run("negative ceiling never decides", func(t *testing.T) {
		if _, ok := Decide(decimal.NewFromInt(-10), decimal.NewFromInt(50)); ok {
			t.Error("expected no decision for a negative ceiling")
		}
	})

	t.Run("identical inputs yield identical decisions", func(t *testing.T) {
		k1, ok1 := Decide(amount, decimal.NewFromInt(185))
		k2, ok2 := Decide(amount, decimal.NewFromInt(185))
		if k1 != k2 || ok1 != ok2 {
			t.Error("expected Decide to be deterministic")
		}
	})
}

func TestThresholdNotifier_Evaluate(t *testing.T) {
	ctx := context.Background()
	window := Window{
		Start: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	newFixture := func() (*ThresholdNotifier, *recordingSink, *fakePreferences, *entity.Budget, *entity.Category) {
		sink := &recordingSink{}
		prefs := newFakePreferences()
		notifier := NewThresholdNotifier(prefs, sink, NewCrossingTracker())

		budget := entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(200), entity.BudgetRecurrenceMonthly)
		category := &entity.Category{ID: budget.CategoryID, Name: "Groceries", Kind: entity.CategoryKindExpense}
		return notifier, sink, prefs, budget, category
	}

	t.Run("below the warning band emits nothing", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		output, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(100), Window: window,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Alert != nil {
			t.Error("expected no alert below the warning band")
		}
		if len(sink.titles) != 0 {
			t.Error("expected nothing delivered to the sink")
		}
	})

	t.Run("crossing ninety percent emits a warning", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		output, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(180), Window: window,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Alert == nil {
			t.Fatal("expected a warning alert")
		}
		if output.Alert.Kind != entity.AlertKindWarning {
			t.Errorf("expected kind %s, got %s", entity.AlertKindWarning, output.Alert.Kind)
		}
		if got := output.Alert.Percent.StringFixed(2); got != "90.00" {
			t.Errorf("expected percent 90.00, got %s", got)
		}
		if len(sink.titles) != 1 || sink.titles[0] != "Warning!" {
			t.Errorf("expected a single warning delivery, got %v", sink.titles)
		}
	})

	t.Run("reaching the ceiling emits an exceeded alert", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		output, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(200), Window: window,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Alert == nil || output.Alert.Kind != entity.AlertKindExceeded {
			t.Fatalf("expected an exceeded alert, got %+v", output.Alert)
		}
		if len(sink.titles) != 1 || sink.titles[0] != "Exceeded Budget for Groceries" {
			t.Errorf("expected a single exceeded delivery, got %v", sink.titles)
		}
	})

	t.Run("same band within a window fires once", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		for i := 0; i < 3; i++ {
			if _, err := notifier.Evaluate(ctx, EvaluateInput{
				Budget: budget, Category: category, Spent: decimal.NewFromInt(185), Window: window,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(sink.titles) != 1 {
			t.Errorf("expected one delivery for repeated evaluations, got %d", len(sink.titles))
		}
	})

	t.Run("escalating from warning to exceeded fires again", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(180), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(205), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sink.titles) != 2 {
			t.Fatalf("expected two deliveries, got %d", len(sink.titles))
		}
		if sink.titles[1] != "Exceeded Budget for Groceries" {
			t.Errorf("expected the second delivery to be the exceeded alert, got %s", sink.titles[1])
		}
	})

	t.Run("dropping below the band re-arms the tracker", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(185), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// A deletion pulls the spend back under the band.
		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(100), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(185), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sink.titles) != 2 {
			t.Errorf("expected the re-crossing to fire again, got %d deliveries", len(sink.titles))
		}
	})

	t.Run("a new window fires independently", func(t *testing.T) {
		notifier, sink, _, budget, category := newFixture()

		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(185), Window: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		nextWindow := Window{Start: window.End, End: window.End.AddDate(0, 1, 0)}
		if _, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(185), Window: nextWindow,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sink.titles) != 2 {
			t.Errorf("expected the new window to fire again, got %d deliveries", len(sink.titles))
		}
	})

	t.Run("disabled preference suppresses delivery", func(t *testing.T) {
		notifier, sink, prefs, budget, category := newFixture()

		if err := prefs.SetBool(ctx, budget.UserID, "budgetNotificationsEnabled", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := notifier.Evaluate(ctx, EvaluateInput{
			Budget: budget, Category: category, Spent: decimal.NewFromInt(200), Window: window,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Alert != nil {
			t.Error("expected no alert when notifications are disabled")
		}
		if len(sink.titles) != 0 {
			t.Error("expected nothing delivered when notifications are disabled")
		}
	})
}
