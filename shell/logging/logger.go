package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log levels accepted in configuration.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats accepted in configuration.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for a format other than text or json.
var ErrUnknownFormat = errors.New("unknown log format")

// NewLogger creates a logger writing to w.
// The level is case-insensitive and falls back to INFO when unknown.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	handler, err := NewHandler(w, level, format)
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}

// NewHandler creates the slog.Handler behind NewLogger.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, "WARNING":
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenSink returns the writer for log output: stderr for an empty path, otherwise the file
// opened for appending. The returned close function is safe to call for stderr.
func OpenSink(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, file.Close, nil
}
