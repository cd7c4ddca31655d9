package gather

import "time"

// instrumented pairs a wrapped gatherer's state with per-run metrics.
type instrumented[A any] struct {
	inner   A
	metrics *RunMetrics
}

func countSink[R any](m *RunMetrics, down Sink[R]) Sink[R] {
	return func(val R) bool {
		if !down(val) {
			return false
		}
		m.Out++
		return true
	}
}

// Instrument returns a gatherer equivalent to g that reports RunMetrics to
// collect when each run ends. The report happens in the finisher, so it
// covers exhaustion and cooperative stops with any executor; runs aborted
// by a fault are not reported. Instrumented gatherers are sequential-only.
func Instrument[T, A, R any](
	g Gatherer[T, A, R],
	collect MetricsCollector,
) Gatherer[T, *instrumented[A], R] {
	if collect == nil {
		panic("gather: nil metrics collector")
	}
	return OfSequential(
		func() *instrumented[A] {
			return &instrumented[A]{
				inner:   g.initializer(),
				metrics: newRunMetrics(),
			}
		},
		func(state *instrumented[A], val T, down Sink[R]) bool {
			state.metrics.In++
			if !g.integrator(state.inner, val, countSink(state.metrics, down)) {
				state.metrics.Stopped = true
				return false
			}
			return true
		},
		func(state *instrumented[A], down Sink[R]) {
			if g.finisher != nil {
				g.finisher(state.inner, countSink(state.metrics, down))
			}
			state.metrics.Duration = time.Since(state.metrics.Start)
			collect(state.metrics)
		},
	)
}
