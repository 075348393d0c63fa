package shell

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// ErrPublishingEventFailed is returned when a domain event could not be written to the publisher.
var ErrPublishingEventFailed = errors.New("publishing event failed")

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsBusinessRejection checks if an error is a lending rule violation that left the library unchanged.
func IsBusinessRejection(err error) bool {
	_, ok := core.KindOf(err)
	return ok && !core.IsConsistencyFault(err)
}
