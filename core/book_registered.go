package core

import (
	"time"
)

// BookRegisteredEventType is the event type identifier.
const BookRegisteredEventType = "BookRegistered"

// BookRegistered represents when a new title with its copies is added to the catalog.
type BookRegistered struct {
	EventType   EventTypeString
	BookKey     BookKeyString
	Title       string
	Author      string
	Year        int
	TotalCopies int
	OccurredAt  OccurredAtTS
}

// BuildBookRegistered creates a new BookRegistered event.
func BuildBookRegistered(
	bookKey BookKeyString,
	title string,
	author string,
	year int,
	totalCopies int,
	occurredAt time.Time,
) BookRegistered {

	return BookRegistered{
		EventType:   BookRegisteredEventType,
		BookKey:     bookKey,
		Title:       title,
		Author:      author,
		Year:        year,
		TotalCopies: totalCopies,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRegistered) IsEventType() string {
	return BookRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRegistered) IsErrorEvent() bool {
	return false
}
