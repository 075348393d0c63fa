package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// ContextualLoggerSpy captures contextual logging calls for testing.
type ContextualLoggerSpy struct {
	records     []SpyContextualLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyContextualLogRecord represents a recorded contextual log call.
type SpyContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{
		recordCalls: recordCalls,
	}
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
		Context: ctx,
	})
}

// GetRecords returns a copy of all records of the given level.
func (s *ContextualLoggerSpy) GetRecords(level string) []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyContextualLogRecord, 0)
	for _, r := range s.records {
		if r.Level == level {
			records = append(records, r)
		}
	}

	return records
}

// GetTotalRecordCount returns the total number of log records across all levels.
func (s *ContextualLoggerSpy) GetTotalRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog checks if a log with the specified level and message exists.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, r := range s.GetRecords(level) {
		if r.Message == message {
			return true
		}
	}

	return false
}

// ArgValue returns the value following key in the args of a recorded call.
func (r SpyContextualLogRecord) ArgValue(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, ok := r.Args[i].(string); ok && k == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

var _ library.ContextualLogger = (*ContextualLoggerSpy)(nil)
