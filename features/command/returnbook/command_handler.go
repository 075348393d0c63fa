package returnbook

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// Library defines the interface needed by the CommandHandler.
type Library interface {
	ReturnBook(patronKey core.PatronKeyString, bookKey core.BookKeyString) error
}

// CommandHandler takes books back through the Library and publishes the outcome as a domain event.
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

// Handle returns the book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewErrorResult(), err
	}

	err := h.library.ReturnBook(command.PatronKey, command.BookKey)

	var event core.DomainEvent = core.BuildBookReturnedByPatron(command.BookKey, command.PatronKey, command.OccurredAt)
	if err != nil {
		event = core.BuildOperationFailed(
			core.ReturningBookFailedEventType,
			command.BookKey,
			command.PatronKey,
			err,
			command.OccurredAt,
		)
	}

	result := shell.ResultFor(event, err)
	result.PublishErr = shell.PublishEvent(ctx, h.publisher, event)

	return result, err
}
