package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// TracingCollectorSpy captures span operations for testing.
type TracingCollectorSpy struct {
	spans       []*SpySpanRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpySpanRecord represents a recorded span with its final state.
type SpySpanRecord struct {
	Name       string
	Attributes map[string]string
	Status     string
	Finished   bool
	mu         sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{
		spans:       make([]*SpySpanRecord, 0),
		recordCalls: recordCalls,
	}
}

// StartSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, library.SpanContext) {
	span := &SpySpanRecord{
		Name:       name,
		Attributes: make(map[string]string, len(attrs)),
	}
	maps.Copy(span.Attributes, attrs)

	if s.recordCalls {
		s.mu.Lock()
		s.spans = append(s.spans, span)
		s.mu.Unlock()
	}

	return ctx, SpanContextSpy{span: span}
}

// FinishSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) FinishSpan(spanCtx library.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(SpanContextSpy)
	if !ok {
		return
	}

	spySpan.span.mu.Lock()
	defer spySpan.span.mu.Unlock()

	spySpan.span.Status = status
	spySpan.span.Finished = true
	maps.Copy(spySpan.span.Attributes, attrs)
}

var _ library.TracingCollector = (*TracingCollectorSpy)(nil)

// GetSpans returns copies of all recorded spans.
func (s *TracingCollectorSpy) GetSpans() []SpySpanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]SpySpanSnapshot, 0, len(s.spans))
	for _, span := range s.spans {
		span.mu.Lock()
		snapshots = append(snapshots, SpySpanSnapshot{
			Name:       span.Name,
			Attributes: maps.Clone(span.Attributes),
			Status:     span.Status,
			Finished:   span.Finished,
		})
		span.mu.Unlock()
	}

	return snapshots
}

// SpySpanSnapshot is an immutable copy of a recorded span.
type SpySpanSnapshot struct {
	Name       string
	Attributes map[string]string
	Status     string
	Finished   bool
}

// SpanContextSpy is the SpanContext handed out by TracingCollectorSpy.
type SpanContextSpy struct {
	span *SpySpanRecord
}

// SetStatus implements the SpanContext interface.
func (c SpanContextSpy) SetStatus(status string) {
	c.span.mu.Lock()
	defer c.span.mu.Unlock()
	c.span.Status = status
}

// AddAttribute implements the SpanContext interface.
func (c SpanContextSpy) AddAttribute(key, value string) {
	c.span.mu.Lock()
	defer c.span.mu.Unlock()
	c.span.Attributes[key] = value
}
