package api

import (
	"context"
	"math/rand"
	"time"
)

// jitterRange is the span of the uniform random jitter added to each
// computed backoff delay. Independent jitter per call avoids thundering-herd
// retries across concurrent client instances.
const jitterRange = time.Second

// RetryConfig configures the retry behavior of the request executor.
type RetryConfig struct {
	// MaxAttempts is the total attempt budget for one logical call,
	// including the first attempt. The MaxAttempts-th failure is terminal.
	MaxAttempts int
	// BaseDelay is the base of the exponential backoff.
	BaseDelay time.Duration
	// MaxDelay caps the computed delay.
	MaxDelay time.Duration
	// RetryAfterDefault is assumed when a 429 response carries no
	// Retry-After header.
	RetryAfterDefault time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RetryAfterDefault: 10 * time.Second,
	}
}

// Delay computes the backoff delay for the given 1-based attempt number:
// min(base * 2^attempt + jitter, max), jitter uniform in [0, 1s).
func (r *RetryConfig) Delay(attempt int) time.Duration {
	delay := r.BaseDelay << uint(attempt)
	if delay > r.MaxDelay || delay < 0 {
		return r.MaxDelay
	}
	delay += time.Duration(rand.Int63n(int64(jitterRange)))
	if delay > r.MaxDelay {
		return r.MaxDelay
	}
	return delay
}

// DelayWithHint computes the backoff delay for the given attempt, honoring a
// server-suggested delay (e.g. from a Retry-After header). The larger of the
// two wins, so a server hint is never undercut by the exponential schedule.
func (r *RetryConfig) DelayWithHint(attempt int, hint time.Duration) time.Duration {
	delay := r.Delay(attempt)
	if hint > delay {
		return hint
	}
	return delay
}

// Wait sleeps for the given delay or until the context is cancelled.
func (r *RetryConfig) Wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
