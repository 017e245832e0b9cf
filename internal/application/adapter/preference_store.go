// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Preference keys recognized by the notification flows.
const (
	PrefBudgetNotificationsEnabled = "budgetNotificationsEnabled"
	PrefGoalNotificationsEnabled   = "goalNotificationsEnabled"
)

// PreferenceStore holds per-user boolean settings. Absent keys default to
// enabled so notifications work out of the box.
type PreferenceStore interface {
	// GetBool returns the stored value for key, or true if the key is absent.
	GetBool(ctx context.Context, userID uuid.UUID, key string) (bool, error)

	// SetBool stores the value for key.
	SetBool(ctx context.Context, userID uuid.UUID, key string, value bool) error
}
