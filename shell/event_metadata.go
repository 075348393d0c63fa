package shell

import (
	"context"

	"github.com/google/uuid"
)

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events, e.g. all events of one console session.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

type correlationIDKey struct{}

// WithCorrelationID stores the correlation ID in the context.
func WithCorrelationID(ctx context.Context, correlationID uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation ID stored in the context.
func CorrelationIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(correlationIDKey{}).(uuid.UUID)
	return id, ok
}

// EventMetadataFor builds metadata for a new event.
// Without a correlation ID in the context the event starts its own correlation.
func EventMetadataFor(ctx context.Context) EventMetadata {
	messageID := uuid.New()

	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = messageID
	}

	return BuildEventMetadata(messageID, correlationID, correlationID)
}
