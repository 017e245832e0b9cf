package mock

import (
	"context"
	"sync"
)

// Notification is one delivered title/body pair.
type Notification struct {
	Title string
	Body  string
}

// Sink records every notification delivered during a scenario.
type Sink struct {
	mu        sync.Mutex
	delivered []Notification
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Notify records the delivery.
func (s *Sink) Notify(_ context.Context, title, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, Notification{Title: title, Body: body})
}

// Delivered returns a copy of everything delivered so far.
func (s *Sink) Delivered() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.delivered))
	copy(out, s.delivered)
	return out
}

// Reset drops all recorded deliveries.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = nil
}
