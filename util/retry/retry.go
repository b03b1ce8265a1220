package retry

import (
	"context"
	"time"

	"github.com/melvincarvalho/nomen/ulogger"
)

// Retry runs fn up to RetryCount times, waiting BackoffDurationType *
// BackoffMultiplier * attempt between tries. The context cancels the wait.
func Retry[T any](ctx context.Context, logger ulogger.Logger, fn func() (T, error), opts ...Options) (T, error) {
	var zero T

	options := NewSetOptions(opts...)

	var lastErr error

	for attempt := 1; attempt <= options.RetryCount; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if attempt == options.RetryCount {
			break
		}

		backoff := options.BackoffDurationType * time.Duration(options.BackoffMultiplier) * time.Duration(attempt)
		logger.Warnf("%sattempt %d/%d failed: %v, backing off %s", options.Message, attempt, options.RetryCount, err, backoff)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return zero, lastErr
}
