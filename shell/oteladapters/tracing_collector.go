package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-lending-go/shell"
)

// TracingCollector implements shell.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector that starts spans on tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span carrying attrs and returns the context holding it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, shell.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan sets the final attributes and status, then ends the span.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(attributes(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ shell.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements shell.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps a handler status to an OpenTelemetry status code.
// A rejected command is a normal business outcome, so its span stays Ok.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case "success", "rejected":
		s.span.SetStatus(codes.Ok, "")
	case "consistency_fault":
		s.span.SetStatus(codes.Error, "Book and patron out of sync")
	case "error":
		s.span.SetStatus(codes.Error, "Operation failed")
	case "canceled":
		s.span.SetStatus(codes.Error, "Operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String("status", status))
	}
}

// AddAttribute adds an attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ shell.SpanContext = (*OTelSpanContext)(nil)
