package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// BookKeyString represents a catalog key (usually the ISBN).
type BookKeyString = string

// PatronKeyString represents a patron key (the library card ID).
type PatronKeyString = string

// EventTypeString represents a domain event type identifier.
type EventTypeString = string

// OccurredAtTS represents when an event occurred or a loan was recorded.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
