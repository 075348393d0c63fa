package core

import (
	"time"
)

// BookLentToPatronEventType is the event type identifier.
const BookLentToPatronEventType = "BookLentToPatron"

// BookLentToPatron represents when a copy of a book is lent to a patron.
type BookLentToPatron struct {
	EventType  EventTypeString
	BookKey    BookKeyString
	PatronKey  PatronKeyString
	OccurredAt OccurredAtTS
}

// BuildBookLentToPatron creates a new BookLentToPatron event.
func BuildBookLentToPatron(bookKey BookKeyString, patronKey PatronKeyString, occurredAt time.Time) BookLentToPatron {
	return BookLentToPatron{
		EventType:  BookLentToPatronEventType,
		BookKey:    bookKey,
		PatronKey:  patronKey,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookLentToPatron) IsEventType() string {
	return BookLentToPatronEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToPatron) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToPatron) IsErrorEvent() bool {
	return false
}
