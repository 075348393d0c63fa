package registerpatron

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// Library defines the interface needed by the CommandHandler.
type Library interface {
	RegisterPatron(name string, key core.PatronKeyString, contact string) error
}

// CommandHandler registers patrons and publishes the outcome as a domain event.
type CommandHandler struct {
	library   Library
	publisher shell.EventPublisher
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithEventPublisher sets the publisher that receives the domain events.
func WithEventPublisher(publisher shell.EventPublisher) Option {
	return func(h *CommandHandler) {
		h.publisher = publisher
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(lib Library, opts ...Option) CommandHandler {
	handler := CommandHandler{library: lib}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle registers the patron.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewErrorResult(), err
	}

	err := h.library.RegisterPatron(command.Name, command.PatronKey, command.Contact)

	var event core.DomainEvent = core.BuildPatronRegistered(command.PatronKey, command.Name, command.Contact, command.OccurredAt)
	if err != nil {
		event = core.BuildOperationFailed(core.RegisteringPatronFailedEventType, "", command.PatronKey, err, command.OccurredAt)
	}

	result := shell.ResultFor(event, err)
	result.PublishErr = shell.PublishEvent(ctx, h.publisher, event)

	return result, err
}
