package registerbook

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

const (
	commandType = "RegisterBook"
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	BookKey     core.BookKeyString
	Title       string
	Author      string
	Year        int
	TotalCopies int
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookKey core.BookKeyString,
	title string,
	author string,
	year int,
	totalCopies int,
	occurredAt time.Time,
) Command {

	return Command{
		BookKey:     bookKey,
		Title:       title,
		Author:      author,
		Year:        year,
		TotalCopies: totalCopies,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
