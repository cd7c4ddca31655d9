package gather

import "iter"

// Zipped pairs an element of the source with an element of another
// sequence.
type Zipped[T, U any] struct {
	First  T
	Second U
}

// cursorState holds a pull cursor over a secondary sequence. The finisher
// releases the cursor, so the secondary sequence's cleanup runs even when
// the pipeline stops early.
type cursorState[U any] struct {
	next func() (U, bool)
	stop func()
}

func pullCursor[U any](src iter.Seq[U]) *cursorState[U] {
	next, stop := iter.Pull(src)
	return &cursorState[U]{next: next, stop: stop}
}

// Zip pairs each source element with the next element of other, in order,
// stopping as soon as either side runs out. Panics if other is nil.
func Zip[T, U any](other iter.Seq[U]) Gatherer[T, *cursorState[U], Zipped[T, U]] {
	if other == nil {
		panic("gather: nil sequence")
	}
	return OfSequential(
		func() *cursorState[U] {
			return pullCursor(other)
		},
		func(state *cursorState[U], val T, down Sink[Zipped[T, U]]) bool {
			u, ok := state.next()
			if !ok {
				return false
			}
			return down.Push(Zipped[T, U]{First: val, Second: u})
		},
		func(state *cursorState[U], _ Sink[Zipped[T, U]]) {
			state.stop()
		},
	)
}

// Interleave alternates source elements with elements of other, starting
// with the source. The run stops once other is exhausted: the source
// element preceding the missing value is still emitted. Panics if other is
// nil.
func Interleave[T any](other iter.Seq[T]) Gatherer[T, *cursorState[T], T] {
	if other == nil {
		panic("gather: nil sequence")
	}
	return OfSequential(
		func() *cursorState[T] {
			return pullCursor(other)
		},
		func(state *cursorState[T], val T, down Sink[T]) bool {
			if !down.Push(val) {
				return false
			}
			u, ok := state.next()
			if !ok {
				return false
			}
			return down.Push(u)
		},
		func(state *cursorState[T], _ Sink[T]) {
			state.stop()
		},
	)
}
