package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// EventPublisherSpy records published envelopes. It can be told to fail.
type EventPublisherSpy struct {
	envelopes []shell.EventEnvelope
	failWith  error
	mu        sync.Mutex
}

// NewEventPublisherSpy creates a publisher spy. A non-nil failWith is returned from every Publish.
func NewEventPublisherSpy(failWith error) *EventPublisherSpy {
	return &EventPublisherSpy{failWith: failWith}
}

// Publish implements shell.EventPublisher.
func (s *EventPublisherSpy) Publish(_ context.Context, envelope shell.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}

	s.envelopes = append(s.envelopes, envelope)

	return nil
}

// GetEnvelopes returns a copy of all published envelopes.
func (s *EventPublisherSpy) GetEnvelopes() []shell.EventEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]shell.EventEnvelope(nil), s.envelopes...)
}

// GetEvents returns the domain events of all published envelopes.
func (s *EventPublisherSpy) GetEvents() core.DomainEvents {
	events := make(core.DomainEvents, 0)
	for _, envelope := range s.GetEnvelopes() {
		events = append(events, envelope.DomainEvent)
	}

	return events
}

// LastEvent returns the most recently published event or nil.
func (s *EventPublisherSpy) LastEvent() core.DomainEvent {
	events := s.GetEvents()
	if len(events) == 0 {
		return nil
	}

	return events[len(events)-1]
}

var _ shell.EventPublisher = (*EventPublisherSpy)(nil)
