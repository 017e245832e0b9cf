package mock

import (
	"sync"
	"time"
)

// Scheduler captures armed callbacks instead of waiting for real time, so
// scenarios decide when a deferred check fires.
type Scheduler struct {
	mu        sync.Mutex
	callbacks []func()
	delays    []time.Duration
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After records the callback without starting a timer.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	s.callbacks = append(s.callbacks, fn)
}

// Pending returns the number of armed callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}

// Fire runs the callback at the given position. Callbacks stay in place so
// positions are stable across a scenario.
func (s *Scheduler) Fire(i int) {
	s.mu.Lock()
	fn := s.callbacks[i]
	s.mu.Unlock()
	fn()
}

// FireAll runs every armed callback in arming order.
func (s *Scheduler) FireAll() {
	s.mu.Lock()
	callbacks := make([]func(), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Reset drops all armed callbacks.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = nil
	s.delays = nil
}
