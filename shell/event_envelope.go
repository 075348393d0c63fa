package shell

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// ErrMappingToSerializedEventFailedForDomainEvent is returned when domain event serialization fails.
var ErrMappingToSerializedEventFailedForDomainEvent = errors.New("mapping to serialized event failed for domain event")

// ErrMappingToSerializedEventFailedForMetadata is returned when metadata serialization fails.
var ErrMappingToSerializedEventFailedForMetadata = errors.New("mapping to serialized event failed for metadata")

// EventEnvelope combines a domain event with its metadata.
type EventEnvelope struct {
	DomainEvent   core.DomainEvent
	EventMetadata EventMetadata
}

// BuildEventEnvelope creates a new EventEnvelope from domain event and metadata.
func BuildEventEnvelope(domainEvent core.DomainEvent, eventMetadata EventMetadata) EventEnvelope {
	return EventEnvelope{
		DomainEvent:   domainEvent,
		EventMetadata: eventMetadata,
	}
}

// SerializedEvent is the wire representation of an EventEnvelope.
type SerializedEvent struct {
	EventType  string              `json:"eventType"`
	OccurredAt time.Time           `json:"occurredAt"`
	IsError    bool                `json:"isError"`
	Payload    jsoniter.RawMessage `json:"payload"`
	Metadata   jsoniter.RawMessage `json:"metadata"`
}

// SerializedEventFrom converts an EventEnvelope to a SerializedEvent.
func SerializedEventFrom(envelope EventEnvelope) (SerializedEvent, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(envelope.DomainEvent)
	if err != nil {
		return SerializedEvent{}, errors.Join(ErrMappingToSerializedEventFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(envelope.EventMetadata)
	if err != nil {
		return SerializedEvent{}, errors.Join(ErrMappingToSerializedEventFailedForMetadata, err)
	}

	return SerializedEvent{
		EventType:  envelope.DomainEvent.IsEventType(),
		OccurredAt: envelope.DomainEvent.HasOccurredAt(),
		IsError:    envelope.DomainEvent.IsErrorEvent(),
		Payload:    payloadJSON,
		Metadata:   metadataJSON,
	}, nil
}
