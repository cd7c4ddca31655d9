package gather

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/fxsml/gather/throttle"
)

// Throttle paces emissions through allow, blocking inside the integrator
// until a token is granted. A wait interrupted by ctx cancellation stops
// the run cooperatively: the pending element is not emitted and the
// finisher runs as usual. Panics if allow is nil.
func Throttle[T any](ctx context.Context, allow throttle.Allower) Gatherer[T, struct{}, T] {
	if allow == nil {
		panic("gather: nil allower")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[T]) bool {
			if err := allow.Allow(ctx, 1); err != nil {
				return false
			}
			return down.Push(val)
		},
	)
}

// RateLimited enforces a minimum interval between consecutive emissions.
// The first element passes immediately; each later element blocks for the
// remainder of minInterval measured from the previous emission, so the
// pacing does not drift when integration itself takes time. Interrupted
// waits stop the run without emitting the pending element. Panics if
// minInterval is not positive.
func RateLimited[T any](ctx context.Context, minInterval time.Duration) Gatherer[T, struct{}, T] {
	if minInterval <= 0 {
		panic("gather: rate limit interval must be positive")
	}
	limiter := rate.NewLimiter(rate.Every(minInterval), 1)
	return Throttle[T](ctx, throttle.NewRateAllower(limiter))
}
