// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReminderMarkerStore keeps the last-contribution timestamp per goal. The
// marker is not a domain entity: it is a last-write-wins cancellation token.
// A deferred reminder reads it back when it fires and suppresses itself if a
// newer contribution overwrote the value it was armed with.
type ReminderMarkerStore interface {
	// Set records ts as the goal's last contribution instant, overwriting
	// any prior value.
	Set(ctx context.Context, goalID uuid.UUID, ts time.Time) error

	// Get returns the goal's marker. ok is false when no marker is set.
	Get(ctx context.Context, goalID uuid.UUID) (ts time.Time, ok bool, err error)

	// Delete removes the goal's marker, used when the goal itself is deleted.
	Delete(ctx context.Context, goalID uuid.UUID) error
}
