// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/centsible/backend/internal/application/adapter"
)

// timerScheduler implements the adapter.Scheduler interface with
// time.AfterFunc. Timers live in process memory only and are lost on
// restart, which the reminder flow tolerates.
type timerScheduler struct{}

// NewTimerScheduler creates a new timer scheduler instance.
func NewTimerScheduler() adapter.Scheduler {
	return &timerScheduler{}
}

// After arms fn to run once after d elapses.
func (s *timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
