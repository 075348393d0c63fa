package registerbook

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// Library defines the interface needed by the CommandHandler.
type Library interface {
	RegisterBook(title, author string, year int, key core.BookKeyString, totalCopies int) error
}

// CommandHandler registers books and publishes the outcome as a domain event.
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

// Handle registers the book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.NewErrorResult(), err
	}

	err := h.library.RegisterBook(command.Title, command.Author, command.Year, command.BookKey, command.TotalCopies)

	var event core.DomainEvent
	if err != nil {
		event = core.BuildOperationFailed(core.RegisteringBookFailedEventType, command.BookKey, "", err, command.OccurredAt)
	} else {
		event = core.BuildBookRegistered(
			command.BookKey,
			command.Title,
			command.Author,
			command.Year,
			command.TotalCopies,
			command.OccurredAt,
		)
	}

	result := shell.ResultFor(event, err)
	result.PublishErr = shell.PublishEvent(ctx, h.publisher, event)

	return result, err
}
