// Package retry re-runs short local operations that fail transiently, such
// as SQLite writes that hit a lock held by another termfolio process.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Predicate reports whether an error is worth another attempt.
type Predicate func(error) bool

// Policy controls how many attempts are made and how long to wait between
// them.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultPolicy keeps the total wait well under a frame budget so it can run
// inside a key handler.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  3,
		BaseDelay: 10 * time.Millisecond,
		MaxDelay:  50 * time.Millisecond,
	}
}

// Do runs fn until it succeeds, returns an error retryable rejects, or the
// attempts run out. A nil retryable never retries.
func Do(ctx context.Context, policy Policy, retryable Predicate, fn func() error) error {
	attempts := max(policy.Attempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts || retryable == nil || !retryable(err) {
			return err
		}

		if !wait(ctx, jitter(policy.BaseDelay, policy.MaxDelay, attempt)) {
			return ctx.Err()
		}
	}
	return err
}

// jitter returns a random delay up to base*2^(attempt-1), capped at ceiling.
func jitter(base, ceiling time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base << (max(attempt, 1) - 1)
	if ceiling > 0 && d > ceiling {
		d = ceiling
	}
	return time.Duration(rand.Int63n(int64(d) + 1))
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
