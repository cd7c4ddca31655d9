package gather

import "slices"

type windowState[T any] struct {
	buf []T
}

// WindowFixed groups consecutive elements into non-overlapping windows of
// size elements, emitted as freshly allocated slices the downstream owns.
// A short trailing window is emitted when the source ends mid-window, so an
// input of length n produces ceil(n/size) windows and their concatenation
// reconstructs the input. Panics if size is not positive.
func WindowFixed[T any](size int) Gatherer[T, *windowState[T], []T] {
	if size <= 0 {
		panic("gather: fixed window size must be positive")
	}
	return OfSequential(
		func() *windowState[T] {
			return &windowState[T]{buf: make([]T, 0, size)}
		},
		func(state *windowState[T], val T, down Sink[[]T]) bool {
			state.buf = append(state.buf, val)
			if len(state.buf) < size {
				return true
			}
			win := state.buf
			state.buf = make([]T, 0, size)
			return down.Push(win)
		},
		func(state *windowState[T], down Sink[[]T]) {
			if len(state.buf) > 0 {
				down.Push(state.buf)
			}
		},
	)
}

// WindowSliding groups elements into overlapping windows of exactly size
// elements, advancing by one element at a time: each window repeats the
// previous one with its oldest element dropped and one new element
// appended. Inputs shorter than size produce no output at all; unlike
// WindowFixed there is no partial flush at the end of the run. Panics if
// size is not positive.
func WindowSliding[T any](size int) Gatherer[T, *windowState[T], []T] {
	if size <= 0 {
		panic("gather: sliding window size must be positive")
	}
	return Of(
		func() *windowState[T] {
			return &windowState[T]{buf: make([]T, 0, size)}
		},
		func(state *windowState[T], val T, down Sink[[]T]) bool {
			state.buf = append(state.buf, val)
			if len(state.buf) < size {
				return true
			}
			ok := down.Push(slices.Clone(state.buf))
			copy(state.buf, state.buf[1:])
			state.buf = state.buf[:size-1]
			return ok
		},
	)
}
