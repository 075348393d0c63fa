package shell

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// Command represents the contract for all command types.
// Each command encapsulates the intent and parameters needed to execute a specific business operation.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CommandHandler defines the contract for components that process commands with pure business logic.
// Implementations should focus on business logic without observability concerns;
// they are designed to be wrapped with observability decorators.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
// Queries can range from parameter-less reports to searches with filter arguments.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types.
// ResultCount is used for observability.
type QueryResult interface {
	ResultCount() int
}

// QueryHandler defines the contract for components that process queries and return projections
// of the current library state.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Interface aliases for convenience when using handler observability.
// These match the library observability interfaces for consistency.

// MetricsCollector interface for collecting handler performance metrics.
type MetricsCollector = library.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = library.ContextualMetricsCollector

// TracingCollector interface for distributed tracing in handlers.
type TracingCollector = library.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = library.SpanContext

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = library.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = library.Logger
