package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// CommandWrapper provides observability instrumentation for any command handler.
// It wraps a core command handler and adds metrics, tracing, and logging.
// The wrapper handles all infrastructure concerns while delegating business logic to the wrapped handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	// Extract command type from a zero-value instance
	var zeroCommand C
	commandType := zeroCommand.CommandType()

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: commandType,
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle executes the wrapped handler and translates its HandlerResult into metrics, spans, and logs.
// Rejections are logged at warn level, consistency faults and technical errors at error level.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogCommandStart(ctx, w.logger, w.contextualLogger, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(commandStart)

	if result.PublishErr != nil {
		shell.RecordPublishFailure(ctx, w.metricsCollector, w.commandType)
		shell.LogPublishFailure(ctx, w.logger, w.contextualLogger, w.commandType, result.PublishErr)
	}

	status := w.statusOf(result, err)

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	switch status {
	case shell.StatusSuccess:
		shell.LogCommandSuccess(ctx, w.logger, w.contextualLogger, w.commandType, eventTypeOf(result.Event), duration)
	case shell.StatusRejected:
		kind, _ := core.KindOf(err)
		shell.LogCommandRejected(ctx, w.logger, w.contextualLogger, w.commandType, kind.String(), err)
	case shell.StatusConsistencyFault:
		shell.LogConsistencyFault(ctx, w.logger, w.contextualLogger, w.commandType, err)
	default:
		shell.LogCommandError(ctx, w.logger, w.contextualLogger, w.commandType, errOrUnknown(err))
	}

	return result, err
}

func (w *CommandWrapper[C]) statusOf(result shell.HandlerResult, err error) string {
	switch {
	case shell.IsCancellationError(err):
		return shell.StatusCanceled
	case shell.IsTimeoutError(err):
		return shell.StatusTimeout
	case err == nil && result.Outcome == shell.OutcomeSuccess:
		return shell.StatusSuccess
	case err != nil && result.Outcome == shell.OutcomeRejected:
		return shell.StatusRejected
	case err != nil && result.Outcome == shell.OutcomeConsistencyFault:
		return shell.StatusConsistencyFault
	default:
		return shell.StatusError
	}
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

func eventTypeOf(event core.DomainEvent) string {
	if event == nil {
		return ""
	}

	return event.IsEventType()
}
