package core

import (
	"time"
)

// BookReturnedByPatronEventType is the event type identifier.
const BookReturnedByPatronEventType = "BookReturnedByPatron"

// BookReturnedByPatron represents when a patron brings a lent copy back.
type BookReturnedByPatron struct {
	EventType  EventTypeString
	BookKey    BookKeyString
	PatronKey  PatronKeyString
	OccurredAt OccurredAtTS
}

// BuildBookReturnedByPatron creates a new BookReturnedByPatron event.
func BuildBookReturnedByPatron(bookKey BookKeyString, patronKey PatronKeyString, occurredAt time.Time) BookReturnedByPatron {
	return BookReturnedByPatron{
		EventType:  BookReturnedByPatronEventType,
		BookKey:    bookKey,
		PatronKey:  patronKey,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturnedByPatron) IsEventType() string {
	return BookReturnedByPatronEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnedByPatron) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturnedByPatron) IsErrorEvent() bool {
	return false
}
