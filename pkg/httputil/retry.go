package httputil

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryableError marks an error as transient so [Retry] attempts the
// operation again. Wrap network failures and 5xx responses; leave
// permanent failures (bad URLs, 4xx responses) unwrapped.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. The delay doubles after each failed attempt and
// is jittered so concurrent callers don't retry in lockstep.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) || attempt == attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jitter(delay)):
			delay *= 2
		}
	}
}

// RetryWithBackoff is a convenience wrapper around [Retry] with defaults
// suited to manifest fetching: 3 attempts with 1 second initial delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

// jitter spreads a delay over [d/2, d) so simultaneous retries desync.
func jitter(d time.Duration) time.Duration {
	if d <= 1 {
		return d
	}
	half := d / 2
	return half + rand.N(half)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
