// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package backoff provides exponential backoff with jitter for retrying operations.
package backoff

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Policy configures Retry.
type Policy struct {
	// MaxAttempts is the maximum number of calls, including the first.
	MaxAttempts int
	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration
}

// DefaultPolicy is a Policy suitable for small HTTP downloads.
var DefaultPolicy = Policy{
	MaxAttempts:  4,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
}

// Permanent wraps err so that Retry returns it immediately without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Retry calls f until it succeeds, returns a Permanent error, the context is
// done, or the policy's attempts are exhausted. Between attempts, it waits
// with exponential backoff and jitter.
//
// Permanent errors are returned unwrapped.
func Retry[T any](
	ctx context.Context,
	policy Policy,
	f func(ctx context.Context, attempt int) (T, error),
) (T, error) {
	var zero T
	maxAttempts := max(policy.MaxAttempts, 1)
	delay := policy.InitialDelay
	var lastErr error
	for attempt := range maxAttempts {
		result, err := f(ctx, attempt)
		if err == nil {
			return result, nil
		}
		if cause := permanentCause(err); cause != nil {
			return zero, cause
		}
		lastErr = err
		// Don't wait after the last attempt.
		if attempt == maxAttempts-1 {
			break
		}
		// Wait with jitter: random duration between delay/2 and delay.
		jitteredDelay := delay/2 + time.Duration(rand.Int64N(int64(delay/2+1)))
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(jitteredDelay):
		}
		delay = min(delay*2, policy.MaxDelay)
	}
	return zero, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// *** PRIVATE ***

// permanentCause returns the error wrapped by Permanent, or nil if err
// holds no Permanent error.
func permanentCause(err error) error {
	var permanentErr *permanentError
	if errors.As(err, &permanentErr) {
		return permanentErr.err
	}
	return nil
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}
