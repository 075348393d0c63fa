package library

import (
	"errors"
	"time"
)

// ErrNilClock is returned when WithClock is given a nil function.
var ErrNilClock = errors.New("clock must not be nil")

// Option defines a functional option for configuring a Library.
type Option func(*Library) error

// WithClock sets the source of loan timestamps. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Library) error {
		if now == nil {
			return ErrNilClock
		}

		l.now = now

		return nil
	}
}

// WithLogger sets the logger for the Library.
//
// Debug level: compensated lends
// Error level: consistency faults.
func WithLogger(logger Logger) Option {
	return func(l *Library) error {
		l.logger = logger
		return nil
	}
}
