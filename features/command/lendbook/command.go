package lendbook

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

const (
	commandType = "LendBook"
)

// Command represents the intent to lend a copy of a book to a patron.
type Command struct {
	PatronKey  core.PatronKeyString
	BookKey    core.BookKeyString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(patronKey core.PatronKeyString, bookKey core.BookKeyString, occurredAt time.Time) Command {
	return Command{
		PatronKey:  patronKey,
		BookKey:    bookKey,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
