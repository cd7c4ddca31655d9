package gather

import (
	"iter"
	"slices"
)

// runState tracks the phase of a single pipeline run.
type runState int8

const (
	// runStateRunning means source elements are being integrated.
	runStateRunning runState = iota
	// runStateStopping means no more input is wanted; the finisher is pending.
	runStateStopping
	// runStateFinished is terminal.
	runStateFinished
)

// run holds the live state of one pipeline execution. It is owned by a
// single goroutine for the duration of the run.
type run[T, A, R any] struct {
	g        Gatherer[T, A, R]
	state    A
	phase    runState
	rejected bool
}

func newRun[T, A, R any](g Gatherer[T, A, R]) *run[T, A, R] {
	return &run[T, A, R]{
		g:     g,
		state: g.initializer(),
		phase: runStateRunning,
	}
}

// sink wraps yield as the downstream of this run. Once yield rejects a
// value, or the run has finished, every later push reports false without
// calling yield again.
func (r *run[T, A, R]) sink(yield func(R) bool) Sink[R] {
	return func(val R) bool {
		if r.rejected || r.phase == runStateFinished {
			return false
		}
		if !yield(val) {
			r.rejected = true
			return false
		}
		return true
	}
}

// integrate hands one element to the integrator. It reports false when the
// run should stop, either because the integrator signaled it or because the
// downstream rejected a push.
func (r *run[T, A, R]) integrate(val T, down Sink[R]) bool {
	if !r.g.integrator(r.state, val, down) || r.rejected {
		r.phase = runStateStopping
		return false
	}
	return true
}

// finish invokes the finisher exactly once and moves the run to its
// terminal state.
func (r *run[T, A, R]) finish(down Sink[R]) {
	r.phase = runStateStopping
	if r.g.finisher != nil {
		r.g.finisher(r.state, down)
	}
	r.phase = runStateFinished
}

// Gather attaches g to src as a lazy intermediate operation. The returned
// sequence performs a single pass over src when iterated: a fresh state is
// created per iteration, each element is handed to the integrator in
// encounter order, and the finisher runs exactly once afterwards, whether
// the source was exhausted or the run stopped early. Infinite sources work
// as long as something downstream terminates the run.
//
// A panic raised by a user-supplied function propagates to the consumer and
// aborts the run; the finisher does not run in that case.
func (g Gatherer[T, A, R]) Gather(src iter.Seq[T]) iter.Seq[R] {
	return func(yield func(R) bool) {
		r := newRun(g)
		down := r.sink(yield)
		for val := range src {
			if !r.integrate(val, down) {
				break
			}
		}
		r.finish(down)
	}
}

// GatherSlice runs g eagerly over src and collects all outputs.
func GatherSlice[T, A, R any](src []T, g Gatherer[T, A, R]) []R {
	return slices.Collect(g.Gather(slices.Values(src)))
}
