package gather

// composed is the paired state of two fused gatherers. stopped records a
// stop signaled by the second integrator; it outlives integration so a
// trailing flush from the first finisher cannot reach the second
// integrator after the stop.
type composed[A, B any] struct {
	first   A
	second  B
	stopped bool
}

// Compose fuses two gatherers into one that behaves like gathering through
// first and then through second. The fused gatherer carries no combiner:
// fusing hides the intermediate values a partitioned merge would need, so
// composed gatherers are sequential-only.
//
// During finishing, trailing output of first is integrated into second
// before second's own finisher runs.
func Compose[T, A, M, B, R any](
	first Gatherer[T, A, M],
	second Gatherer[M, B, R],
) Gatherer[T, *composed[A, B], R] {
	// forward builds the sink handing first's output to second's integrator.
	forward := func(state *composed[A, B], down Sink[R]) Sink[M] {
		return func(val M) bool {
			if state.stopped {
				return false
			}
			if !second.integrator(state.second, val, down) {
				state.stopped = true
				return false
			}
			return true
		}
	}

	g := Of(
		func() *composed[A, B] {
			return &composed[A, B]{
				first:  first.initializer(),
				second: second.initializer(),
			}
		},
		func(state *composed[A, B], val T, down Sink[R]) bool {
			if !first.integrator(state.first, val, forward(state, down)) || state.stopped {
				return false
			}
			return true
		},
	)

	if first.finisher == nil && second.finisher == nil {
		return g
	}
	return g.WithFinisher(func(state *composed[A, B], down Sink[R]) {
		if first.finisher != nil {
			first.finisher(state.first, forward(state, down))
		}
		if second.finisher != nil {
			second.finisher(state.second, down)
		}
	})
}
