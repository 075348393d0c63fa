package shell

import (
	"context"
	"fmt"
	"time"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration (OpenTelemetry-compatible).
	CommandHandlerDurationMetric = "library_command_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "library_command_calls_total"

	// CommandHandlerRejectedMetric tracks commands rejected by a lending rule.
	CommandHandlerRejectedMetric = "library_command_rejected_total"

	// ConsistencyFaultMetric tracks returns that left book and patron out of sync.
	//
	// Any increase is a bug; alert on increase(library_consistency_faults_total[5m]) > 0.
	ConsistencyFaultMetric = "library_consistency_faults_total"

	// EventPublishFailedMetric tracks events that could not be published.
	EventPublishFailedMetric = "library_event_publish_failed_total"

	// QueryHandlerDurationMetric tracks query handler execution duration (OpenTelemetry-compatible).
	QueryHandlerDurationMetric = "library_query_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "library_query_calls_total"

	// QueryResultSizeMetric records the number of entries a query returned.
	QueryResultSizeMetric = "library_query_result_size"

	// StatusSuccess indicates successful completion.
	StatusSuccess = OutcomeSuccess

	// StatusRejected indicates a lending rule rejected the command.
	StatusRejected = OutcomeRejected

	// StatusConsistencyFault indicates the command left the library inconsistent.
	StatusConsistencyFault = OutcomeConsistencyFault

	// StatusError indicates a technical processing error.
	StatusError = OutcomeError

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandRejected is logged when a lending rule rejects the command.
	LogMsgCommandRejected = "command handler rejected"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgConsistencyFault is logged when a command left the library inconsistent.
	LogMsgConsistencyFault = "command handler consistency fault"

	// LogMsgEventPublishFailed is logged when the domain event could not be published.
	LogMsgEventPublishFailed = "event publishing failed"

	// LogMsgQueryStarted is logged when query processing begins.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged when query processing succeeds.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing fails.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrCommandType identifies the command type in logs.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType identifies the query type in logs.
	LogAttrQueryType = "query_type"

	// LogAttrStatus indicates the processing status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrBusinessOutcome classifies the business result.
	LogAttrBusinessOutcome = "business_outcome"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// LogAttrErrorKind contains the lending error kind.
	LogAttrErrorKind = "error_kind"

	// LogAttrEventType identifies the produced domain event.
	LogAttrEventType = "event_type"

	// LogAttrResultCount indicates the number of entries a query returned.
	LogAttrResultCount = "result_count"

	// LogAttrCorrelationID carries the correlation ID of the session.
	LogAttrCorrelationID = "correlation_id"

	// SpanNameCommandHandle is the tracing span name for command handling.
	SpanNameCommandHandle = "commandhandler.handle"

	// SpanNameQueryHandle is the tracing span name for query handling.
	SpanNameQueryHandle = "queryhandler.handle"
)

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordCommandMetrics records all relevant metrics for a command operation.
// It handles both context-aware and basic metrics collectors automatically.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)

	recordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	switch status {
	case StatusRejected:
		incrementCounter(ctx, collector, CommandHandlerRejectedMetric, labels)
	case StatusConsistencyFault:
		incrementCounter(ctx, collector, ConsistencyFaultMetric, labels)
	}
}

// RecordPublishFailure counts an event that could not be published.
func RecordPublishFailure(ctx context.Context, collector MetricsCollector, commandType string) {
	if collector == nil {
		return
	}

	incrementCounter(ctx, collector, EventPublishFailedMetric, map[string]string{LogAttrCommandType: commandType})
}

// RecordQueryMetrics records all relevant metrics for a query operation.
func RecordQueryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	status string,
	duration time.Duration,
	resultCount int,
) {
	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, status)

	recordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)

	if status == StatusSuccess {
		recordValue(ctx, collector, QueryResultSizeMetric, float64(resultCount), labels)
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, d time.Duration, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	collector.RecordDuration(metric, d, labels)
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

func recordValue(ctx context.Context, collector MetricsCollector, metric string, value float64, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	collector.RecordValue(metric, value, labels)
}

// StartCommandSpan starts a distributed tracing span for command operations.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func StartCommandSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	commandType string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle, map[string]string{
		LogAttrCommandType: commandType,
	})
}

// StartQuerySpan starts a distributed tracing span for query operations.
func StartQuerySpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	queryType string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{
		LogAttrQueryType: queryType,
	})
}

// FinishSpan completes a distributed tracing span with the operation outcome.
func FinishSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogCommandStart logs the beginning of command processing.
func LogCommandStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string) {
	logDebug(ctx, logger, contextualLogger, LogMsgCommandStarted, withCorrelation(ctx, LogAttrCommandType, commandType)...)
}

// LogCommandSuccess logs successful command completion.
func LogCommandSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	eventType string,
	duration time.Duration,
) {
	args := withCorrelation(ctx,
		LogAttrCommandType, commandType,
		LogAttrBusinessOutcome, StatusSuccess,
		LogAttrEventType, eventType,
		LogAttrDurationMS, ToMilliseconds(duration),
	)

	logInfo(ctx, logger, contextualLogger, LogMsgCommandCompleted, args...)
}

// LogCommandRejected logs a command that a lending rule rejected. This is a normal business outcome.
func LogCommandRejected(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	errorKind string,
	err error,
) {
	args := withCorrelation(ctx,
		LogAttrCommandType, commandType,
		LogAttrBusinessOutcome, StatusRejected,
		LogAttrErrorKind, errorKind,
		LogAttrError, err.Error(),
	)

	logWarn(ctx, logger, contextualLogger, LogMsgCommandRejected, args...)
}

// LogConsistencyFault logs a command that left the library inconsistent.
func LogConsistencyFault(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, err error) {
	args := withCorrelation(ctx,
		LogAttrCommandType, commandType,
		LogAttrBusinessOutcome, StatusConsistencyFault,
		LogAttrError, err.Error(),
	)

	logError(ctx, logger, contextualLogger, LogMsgConsistencyFault, args...)
}

// LogCommandError logs technical command processing errors.
func LogCommandError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, err error) {
	logError(ctx, logger, contextualLogger, LogMsgCommandFailed,
		withCorrelation(ctx, LogAttrCommandType, commandType, LogAttrError, err.Error())...)
}

// LogPublishFailure logs a domain event that could not be published.
func LogPublishFailure(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string, err error) {
	logWarn(ctx, logger, contextualLogger, LogMsgEventPublishFailed,
		withCorrelation(ctx, LogAttrCommandType, commandType, LogAttrError, err.Error())...)
}

// LogQueryStart logs the beginning of query processing.
func LogQueryStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string) {
	logDebug(ctx, logger, contextualLogger, LogMsgQueryStarted, withCorrelation(ctx, LogAttrQueryType, queryType)...)
}

// LogQuerySuccess logs successful query completion.
func LogQuerySuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	queryType string,
	resultCount int,
	duration time.Duration,
) {
	args := withCorrelation(ctx,
		LogAttrQueryType, queryType,
		LogAttrResultCount, resultCount,
		LogAttrDurationMS, ToMilliseconds(duration),
	)

	logInfo(ctx, logger, contextualLogger, LogMsgQueryCompleted, args...)
}

// LogQueryError logs query processing errors.
func LogQueryError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, err error) {
	logError(ctx, logger, contextualLogger, LogMsgQueryFailed,
		withCorrelation(ctx, LogAttrQueryType, queryType, LogAttrError, err.Error())...)
}

func withCorrelation(ctx context.Context, args ...any) []any {
	if id, ok := CorrelationIDFrom(ctx); ok {
		return append(args, LogAttrCorrelationID, id.String())
	}

	return args
}

func logDebug(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.DebugContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Debug(msg, args...)
	}
}

func logInfo(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

func logWarn(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.WarnContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Warn(msg, args...)
	}
}

func logError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Error(msg, args...)
	}
}

// formatDurationMS formats duration in milliseconds for span attributes.
func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}
