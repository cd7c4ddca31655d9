package gather

import (
	"context"
	"runtime/debug"
	"time"
)

// GatherChan runs g sequentially over the values of in, sending outputs to
// the returned channel. The run ends when in is closed, when the gatherer
// or downstream signals a stop, or when ctx is canceled. On a stop or
// cancellation the finisher still runs; input values the run no longer
// wants are handed to the configured cancel callback with an error wrapping
// ErrCancel. The returned channel is closed after the run finishes.
//
// The draining of skipped input continues in the background until in is
// closed by the producer.
func (g Gatherer[T, A, R]) GatherChan(
	ctx context.Context,
	in <-chan T,
	opts ...Option[T],
) <-chan R {
	cfg := parseOptions(opts)
	collect := newMetricsDistributor(cfg.collectors...)
	out := make(chan R, cfg.buffer)

	go func() {
		defer close(out)

		r := newRun(g)
		m := newRunMetrics()
		report := func() {
			if collect == nil {
				return
			}
			m.Duration = time.Since(m.Start)
			collect(m)
		}
		drain := func(cause error) {
			go func() {
				for val := range in {
					cfg.cancel(val, newErrCancel(cause))
				}
			}()
		}

		down := r.sink(func(val R) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- val:
				m.Out++
				return true
			}
		})

		integrate := func(val T) (cont bool, err error) {
			if cfg.recover {
				defer func() {
					if rec := recover(); rec != nil {
						cont = false
						err = &RecoveryError{
							PanicValue: rec,
							StackTrace: string(debug.Stack()),
						}
					}
				}()
			}
			return r.integrate(val, down), nil
		}

		for {
			select {
			case <-ctx.Done():
				m.Stopped = true
				m.Err = newErrCancel(ctx.Err())
				r.finish(down)
				report()
				drain(ctx.Err())
				return
			case val, ok := <-in:
				if !ok {
					r.finish(down)
					report()
					return
				}
				m.In++
				cont, err := integrate(val)
				if err != nil {
					// Fault: abort without the finisher.
					m.Err = newErrFailure(err)
					cfg.cancel(val, m.Err)
					report()
					drain(err)
					return
				}
				if !cont {
					// Cooperative stop: skip remaining input.
					m.Stopped = true
					r.finish(down)
					report()
					drain(nil)
					return
				}
			}
		}
	}()

	return out
}
