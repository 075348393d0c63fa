package core

import (
	"time"
)

// PatronRegisteredEventType is the event type identifier.
const PatronRegisteredEventType = "PatronRegistered"

// PatronRegistered represents when a new patron signs up at the library.
type PatronRegistered struct {
	EventType  EventTypeString
	PatronKey  PatronKeyString
	Name       string
	Contact    string
	OccurredAt OccurredAtTS
}

// BuildPatronRegistered creates a new PatronRegistered event.
func BuildPatronRegistered(
	patronKey PatronKeyString,
	name string,
	contact string,
	occurredAt time.Time,
) PatronRegistered {

	return PatronRegistered{
		EventType:  PatronRegisteredEventType,
		PatronKey:  patronKey,
		Name:       name,
		Contact:    contact,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PatronRegistered) IsEventType() string {
	return PatronRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PatronRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PatronRegistered) IsErrorEvent() bool {
	return false
}
