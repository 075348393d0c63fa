package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-lending-go/shell"
)

// QueryWrapper provides observability instrumentation for any query handler.
type QueryWrapper[Q shell.Query, R shell.QueryResult] struct {
	coreHandler      shell.QueryHandler[Q, R]
	queryType        string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R shell.QueryResult](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {
	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle executes the wrapped query handler with observability.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	queryStart := time.Now()
	ctx, span := shell.StartQuerySpan(ctx, w.tracingCollector, w.queryType)
	shell.LogQueryStart(ctx, w.logger, w.contextualLogger, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(queryStart)

	if err != nil {
		status := shell.StatusError
		switch {
		case shell.IsCancellationError(err):
			status = shell.StatusCanceled
		case shell.IsTimeoutError(err):
			status = shell.StatusTimeout
		}

		shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, duration, 0)
		shell.FinishSpan(w.tracingCollector, span, status, duration, err)
		shell.LogQueryError(ctx, w.logger, w.contextualLogger, w.queryType, err)

		return result, err
	}

	count := result.ResultCount()
	shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, shell.StatusSuccess, duration, count)
	shell.FinishSpan(w.tracingCollector, span, shell.StatusSuccess, duration, nil)
	shell.LogQuerySuccess(ctx, w.logger, w.contextualLogger, w.queryType, count, duration)

	return result, nil
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R shell.QueryResult] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R shell.QueryResult](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R shell.QueryResult](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger for the QueryWrapper.
func WithQueryContextualLogging[Q shell.Query, R shell.QueryResult](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R shell.QueryResult](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}

var errUnknown = errors.New("handler failed without an error")

func errOrUnknown(err error) error {
	if err == nil {
		return errUnknown
	}

	return err
}
