package lendbook

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// Library defines the interface needed by the CommandHandler.
type Library interface {
	Lend(patronKey core.PatronKeyString, bookKey core.BookKeyString) error
}

// CommandHandler lends books through the Library and publishes the outcome as a domain event.
// External wrappers handle all observability concerns.
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

// Handle lends the book. The returned error is the library's error, unchanged.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewErrorResult(), err
	}

	err := h.library.Lend(command.PatronKey, command.BookKey)
	event := eventFor(command, err)

	result := shell.ResultFor(event, err)
	result.PublishErr = shell.PublishEvent(ctx, h.publisher, event)

	return result, err
}

func eventFor(command Command, err error) core.DomainEvent {
	if err != nil {
		return core.BuildOperationFailed(
			core.LendingBookFailedEventType,
			command.BookKey,
			command.PatronKey,
			err,
			command.OccurredAt,
		)
	}

	return core.BuildBookLentToPatron(command.BookKey, command.PatronKey, command.OccurredAt)
}
