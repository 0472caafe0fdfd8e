package submission

import (
	"context"
	"time"
)

// RetryConfig controls the upload retry loop. Delay is the gap after the
// first failed attempt; each further gap is multiplied by BackoffFactor.
type RetryConfig struct {
	MaxAttempts   int
	Delay         time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig matches the backend contract: three attempts, one second
// initial delay, doubling between attempts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, Delay: time.Second, BackoffFactor: 2}
}

// SleepFunc waits out a retry gap. Implementations must honor context
// cancellation.
type SleepFunc func(ctx context.Context, d time.Duration) error

func realSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DelayFor returns the gap to wait after the given 1-based failed attempt.
func (c RetryConfig) DelayFor(attempt int) time.Duration {
	d := float64(c.Delay)
	for i := 1; i < attempt; i++ {
		d *= c.BackoffFactor
	}
	return time.Duration(d)
}
