package shell

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// Business outcomes of a command.
const (
	OutcomeSuccess          = "success"
	OutcomeRejected         = "rejected"
	OutcomeConsistencyFault = "consistency_fault"
	OutcomeError            = "error"
)

// HandlerResult represents the outcome of a command handler execution.
// It captures the business outcome and the event that was produced,
// without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Outcome is one of the Outcome* constants.
	Outcome string

	// Event is the domain event describing what happened, nil if the command never reached the domain.
	Event core.DomainEvent

	// PublishErr is set when the event could not be published.
	// Publishing failures never change the business outcome.
	PublishErr error
}

// NewSuccessResult creates a HandlerResult for operations that changed the library.
func NewSuccessResult(event core.DomainEvent) HandlerResult {
	return HandlerResult{Outcome: OutcomeSuccess, Event: event}
}

// NewRejectedResult creates a HandlerResult for operations rejected by a business rule.
func NewRejectedResult(event core.DomainEvent) HandlerResult {
	return HandlerResult{Outcome: OutcomeRejected, Event: event}
}

// NewConsistencyFaultResult creates a HandlerResult for operations that left the library inconsistent.
func NewConsistencyFaultResult(event core.DomainEvent) HandlerResult {
	return HandlerResult{Outcome: OutcomeConsistencyFault, Event: event}
}

// NewErrorResult creates a HandlerResult for technical failures, e.g. a canceled context.
func NewErrorResult() HandlerResult {
	return HandlerResult{Outcome: OutcomeError}
}

// ResultFor classifies err and builds the matching HandlerResult for the event.
func ResultFor(event core.DomainEvent, err error) HandlerResult {
	switch {
	case err == nil:
		return NewSuccessResult(event)
	case core.IsConsistencyFault(err):
		return NewConsistencyFaultResult(event)
	case IsBusinessRejection(err):
		return NewRejectedResult(event)
	default:
		return HandlerResult{Outcome: OutcomeError, Event: event}
	}
}
