package analyzer

import (
	"context"
	"time"
)

// Delay models the latency of a remote analysis call.
type Delay interface {
	// Wait blocks until the delay elapses or ctx is done, returning ctx.Err()
	// in the latter case.
	Wait(ctx context.Context) error
}

// DelayFunc adapts a function to Delay.
type DelayFunc func(ctx context.Context) error

// Wait calls f(ctx).
func (f DelayFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// NoDelay returns a Delay that only reports cancellation.
func NoDelay() Delay {
	return DelayFunc(func(ctx context.Context) error {
		return ctx.Err()
	})
}

// FixedDelay returns a Delay of d. Non-positive durations behave like
// NoDelay.
func FixedDelay(d time.Duration) Delay {
	if d <= 0 {
		return NoDelay()
	}
	return DelayFunc(func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}
