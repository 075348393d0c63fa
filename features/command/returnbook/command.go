package returnbook

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to return a lent copy of a book to the library.
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
