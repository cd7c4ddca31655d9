package gather

type seenState[K comparable] struct {
	seen map[K]struct{}
}

// DistinctBy passes through the first element observed for each key and
// silently drops later duplicates, across the whole run. Encounter order of
// first occurrences is preserved. Panics if key is nil.
func DistinctBy[T any, K comparable](key func(T) K) Gatherer[T, *seenState[K], T] {
	if key == nil {
		panic("gather: nil key function")
	}
	return Of(
		func() *seenState[K] {
			return &seenState[K]{seen: make(map[K]struct{})}
		},
		func(state *seenState[K], val T, down Sink[T]) bool {
			k := key(val)
			if _, dup := state.seen[k]; dup {
				return true
			}
			state.seen[k] = struct{}{}
			return down.Push(val)
		},
	)
}

type prevState[T comparable] struct {
	prev  T
	valid bool
}

// ConsecutiveDedup drops elements equal to their immediate predecessor.
// Only adjacent runs collapse; a value repeated later in the sequence is
// emitted again.
func ConsecutiveDedup[T comparable]() Gatherer[T, *prevState[T], T] {
	return Of(
		func() *prevState[T] {
			return &prevState[T]{}
		},
		func(state *prevState[T], val T, down Sink[T]) bool {
			repeat := state.valid && state.prev == val
			state.prev = val
			state.valid = true
			if repeat {
				return true
			}
			return down.Push(val)
		},
	)
}
