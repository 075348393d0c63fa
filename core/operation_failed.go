package core

import (
	"errors"
	"time"
)

// Event types of the failure events.
const (
	RegisteringBookFailedEventType   = "RegisteringBookFailed"
	RegisteringPatronFailedEventType = "RegisteringPatronFailed"
	LendingBookFailedEventType       = "LendingBookFailed"
	ReturningBookFailedEventType     = "ReturningBookFailed"
)

// OperationFailed represents a use case that was rejected by a business rule
// or that ended in a consistency fault.
// One struct serves all failure event types; EventType tells them apart.
type OperationFailed struct {
	EventType        EventTypeString
	BookKey          BookKeyString
	PatronKey        PatronKeyString
	ErrorKind        string
	FailureInfo      string
	ConsistencyFault bool
	OccurredAt       OccurredAtTS
}

// BuildOperationFailed creates a failure event of the given type from the error that caused it.
func BuildOperationFailed(
	eventType EventTypeString,
	bookKey BookKeyString,
	patronKey PatronKeyString,
	cause error,
	occurredAt time.Time,
) OperationFailed {

	event := OperationFailed{
		EventType:        eventType,
		BookKey:          bookKey,
		PatronKey:        patronKey,
		ConsistencyFault: IsConsistencyFault(cause),
		OccurredAt:       ToOccurredAt(occurredAt),
	}

	if cause != nil {
		event.FailureInfo = cause.Error()
	}

	var domainErr *Error
	if errors.As(cause, &domainErr) {
		event.ErrorKind = domainErr.Kind.String()
	}

	return event
}

// IsEventType returns the event type identifier.
func (e OperationFailed) IsEventType() string {
	return e.EventType
}

// HasOccurredAt returns when this event occurred.
func (e OperationFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e OperationFailed) IsErrorEvent() bool {
	return true
}
