// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Scheduler arms a deferred, fire-and-forget callback. Scheduled callbacks
// are best-effort: they do not survive a process restart, which the reminder
// flow accepts by re-checking its marker when the callback eventually runs.
type Scheduler interface {
	After(d time.Duration, fn func())
}
