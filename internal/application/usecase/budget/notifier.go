// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// warningRatio is the fraction of the ceiling at which a warning fires.
var warningRatio = decimal.RequireFromString("0.9")

// Decide maps a ceiling and a spend to an alert kind. It is a pure function:
// identical arguments always yield the identical decision.
//
// A zero ceiling never produces a decision, which also guards the percent
// division. Spend in [90%, 100%) yields a warning, at or past 100% an
// exceeded alert, below 90% nothing.
func Decide(amount, spent decimal.Decimal) (entity.AlertKind, bool) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", false
	}
	if spent.GreaterThanOrEqual(amount) {
		return entity.AlertKindExceeded, true
	}
	if spent.GreaterThanOrEqual(amount.Mul(warningRatio)) {
		return entity.AlertKindWarning, true
	}
	return "", false
}

// EvaluateInput represents the input for a threshold evaluation.
type EvaluateInput struct {
	Budget   *entity.Budget
	Category *entity.Category
	Spent    decimal.Decimal
	Window   Window
}

// EvaluateOutput represents the output of a threshold evaluation. Alert is
// nil when no notification was emitted.
type EvaluateOutput struct {
	Alert *entity.BudgetAlert
}

// ThresholdNotifier decides whether a freshly recomputed spend crosses a
// notification threshold and emits the alert at most once per crossing per
// window. Callers invoke it after every transaction mutation touching the
// budget's category.
type ThresholdNotifier struct {
	preferences adapter.PreferenceStore
	sink        adapter.NotificationSink
	tracker     *CrossingTracker
}

// NewThresholdNotifier creates a new ThresholdNotifier instance.
func NewThresholdNotifier(
	preferences adapter.PreferenceStore,
	sink adapter.NotificationSink,
	tracker *CrossingTracker,
) *ThresholdNotifier {
	return &ThresholdNotifier{
		preferences: preferences,
		sink:        sink,
		tracker:     tracker,
	}
}

// Evaluate runs the decision and, when a new crossing is detected, sends the
// alert to the notification sink. Re-evaluating the same band within one
// window is a no-op; dropping below the warning band re-arms the tracker so
// a later re-crossing fires again.
func (n *ThresholdNotifier) Evaluate(ctx context.Context, input EvaluateInput) (*EvaluateOutput, error) {
	kind, ok := Decide(input.Budget.Amount, input.Spent)
	if !ok {
		n.tracker.Clear(input.Budget.ID)
		return &EvaluateOutput{}, nil
	}

	enabled, err := n.preferences.GetBool(ctx, input.Budget.UserID, adapter.PrefBudgetNotificationsEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to read budget notification preference: %w", err)
	}
	if !enabled {
		return &EvaluateOutput{}, nil
	}

	if last, seen := n.tracker.Last(input.Budget.ID, input.Window.Start); seen && last == kind {
		return &EvaluateOutput{}, nil
	}

	alert := &entity.BudgetAlert{
		Kind:         kind,
		BudgetID:     input.Budget.ID,
		CategoryName: input.Category.Name,
		Percent:      input.Spent.Div(input.Budget.Amount).Mul(decimal.NewFromInt(100)),
	}

	n.sink.Notify(ctx, alert.Title(), alert.Body())
	n.tracker.Mark(input.Budget.ID, input.Window.Start, kind)

	slog.Info("Budget alert emitted",
		"budget_id", input.Budget.ID,
		"kind", string(kind),
		"percent", alert.Percent.StringFixed(2),
	)

	return &EvaluateOutput{Alert: alert}, nil
}
