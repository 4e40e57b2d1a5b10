// Package retry retries idempotent operations with exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy controls how often and how fast an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, including the first one.
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultPolicy suits interactive API calls: a few quick retries.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:     3,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// NoRetry calls an operation once.
func NoRetry() Policy {
	return Policy{Attempts: 1}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. Do returns the wrapped error
// unchanged.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls op until it succeeds, returns a Permanent error or the attempts
// are exhausted. The last error is returned as is. Cancelling ctx stops
// the waiting between attempts and returns ctx.Err().
func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	attempts := max(p.Attempts, 1)
	delay := p.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}

		var permanent *permanentError
		if errors.As(err, &permanent) {
			return permanent.err
		}
		if attempt >= attempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay = next(delay, p)
	}
}

func next(delay time.Duration, p Policy) time.Duration {
	if p.Multiplier > 0 {
		delay = time.Duration(float64(delay) * p.Multiplier)
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}
