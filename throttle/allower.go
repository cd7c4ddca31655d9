// Package throttle provides blocking admission control for pipeline
// emissions.
package throttle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Allower is a rate limiter granting permission to consume tokens.
type Allower interface {
	// Allow blocks until n tokens are available or ctx is done.
	Allow(ctx context.Context, n int64) error
}

// rateAllower adapts golang.org/x/time/rate.Limiter to the Allower
// interface.
type rateAllower struct {
	limiter *rate.Limiter
}

// NewRateAllower wraps limiter as an Allower. The limiter's own burst and
// reservation semantics apply; n values of zero or less count as one.
func NewRateAllower(limiter *rate.Limiter) Allower {
	return rateAllower{limiter: limiter}
}

func (a rateAllower) Allow(ctx context.Context, n int64) error {
	if n <= 0 {
		n = 1
	}
	if err := a.limiter.WaitN(ctx, int(n)); err != nil {
		return fmt.Errorf("throttle: %w", err)
	}
	return nil
}

type leakyBucketAllower struct {
	rate     float64 // tokens per second
	capacity int64   // bucket size
	tokens   float64
	last     time.Time
	mu       sync.Mutex
}

// NewLeakyBucketAllower creates a leaky bucket limiter refilling at rate
// tokens per second up to capacity. The bucket starts full.
func NewLeakyBucketAllower(refillRate float64, capacity int64) Allower {
	return &leakyBucketAllower{
		rate:     refillRate,
		capacity: capacity,
		tokens:   float64(capacity),
		last:     time.Now(),
	}
}

func (a *leakyBucketAllower) Allow(ctx context.Context, n int64) error {
	if n <= 0 {
		n = 1
	}
	if n > a.capacity {
		return fmt.Errorf("throttle: requested %d tokens, but capacity is %d", n, a.capacity)
	}
	for {
		if a.take(n) {
			return nil
		}
		// Retry with a small sleep to avoid busy waiting.
		select {
		case <-ctx.Done():
			return fmt.Errorf("throttle: %w", ctx.Err())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// take refills the bucket for the elapsed time and attempts to consume n
// tokens.
func (a *leakyBucketAllower) take(n int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	a.tokens += now.Sub(a.last).Seconds() * a.rate
	if a.tokens > float64(a.capacity) {
		a.tokens = float64(a.capacity)
	}
	a.last = now

	if a.tokens < float64(n) {
		return false
	}
	a.tokens -= float64(n)
	return true
}

// noopAllower grants every request immediately.
type noopAllower struct{}

// NewNoopAllower returns an Allower that does not limit anything. It still
// honors ctx cancellation.
func NewNoopAllower() Allower {
	return noopAllower{}
}

func (noopAllower) Allow(ctx context.Context, n int64) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("throttle: %w", ctx.Err())
	default:
		return nil
	}
}
