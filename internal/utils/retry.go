package utils

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Retry runs an operation with exponential back-off.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Retryable decides whether an error is worth another attempt. nil retries everything.
	Retryable func(error) bool
	Log       *zap.Logger
}

// Do executes fn until it succeeds, the error is not retryable, attempts run out
// or ctx is done.
func (r Retry) Do(ctx context.Context, operation string, fn func() error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := r.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if r.Retryable != nil && !r.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		if r.Log != nil {
			r.Log.Warn("retrying operation",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", attempts),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}
