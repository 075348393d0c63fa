package registerpatron

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

const (
	commandType = "RegisterPatron"
)

// Command represents the intent to register a new patron.
type Command struct {
	PatronKey  core.PatronKeyString
	Name       string
	Contact    string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(patronKey core.PatronKeyString, name string, contact string, occurredAt time.Time) Command {
	return Command{
		PatronKey:  patronKey,
		Name:       name,
		Contact:    contact,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
