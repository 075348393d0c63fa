package shell

import (
	"context"
	"errors"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// EventPublisher hands domain events to whoever listens.
// Events are not stored by the library; a publisher is purely an outbound notification.
type EventPublisher interface {
	Publish(ctx context.Context, envelope EventEnvelope) error
}

// JSONLinesPublisher writes every event as one JSON object per line.
type JSONLinesPublisher struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONLinesPublisher creates a publisher that writes to w.
func NewJSONLinesPublisher(w io.Writer) *JSONLinesPublisher {
	return &JSONLinesPublisher{w: w}
}

// Publish implements EventPublisher.
func (p *JSONLinesPublisher) Publish(_ context.Context, envelope EventEnvelope) error {
	serialized, err := SerializedEventFrom(envelope)
	if err != nil {
		return errors.Join(ErrPublishingEventFailed, err)
	}

	line, err := jsoniter.ConfigFastest.Marshal(serialized)
	if err != nil {
		return errors.Join(ErrPublishingEventFailed, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err = p.w.Write(append(line, '\n')); err != nil {
		return errors.Join(ErrPublishingEventFailed, err)
	}

	return nil
}

// PublishEvent wraps the event with fresh metadata and publishes it.
// A nil publisher or a nil event is a no-op.
func PublishEvent(ctx context.Context, publisher EventPublisher, event core.DomainEvent) error {
	if publisher == nil || event == nil {
		return nil
	}

	return publisher.Publish(ctx, BuildEventEnvelope(event, EventMetadataFor(ctx)))
}
