package gather

// TakeWhile passes elements through until pred first fails. The failing
// element is not emitted and the run stops. Panics if pred is nil.
func TakeWhile[T any](pred func(T) bool) Gatherer[T, struct{}, T] {
	if pred == nil {
		panic("gather: nil predicate")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[T]) bool {
			if !pred(val) {
				return false
			}
			return down.Push(val)
		},
	)
}

// TakeUntil passes elements through until pred first succeeds. The matching
// boundary element is emitted before the run stops, which is the difference
// to TakeWhile. Panics if pred is nil.
func TakeUntil[T any](pred func(T) bool) Gatherer[T, struct{}, T] {
	if pred == nil {
		panic("gather: nil predicate")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[T]) bool {
			if !down.Push(val) {
				return false
			}
			return !pred(val)
		},
	)
}

type dropState struct {
	passing bool
}

// DropWhile silently skips the leading elements for which pred holds. From
// the first failing element on, everything passes through, including later
// elements for which pred would hold again. Panics if pred is nil.
func DropWhile[T any](pred func(T) bool) Gatherer[T, *dropState, T] {
	if pred == nil {
		panic("gather: nil predicate")
	}
	return Of(
		func() *dropState {
			return &dropState{}
		},
		func(state *dropState, val T, down Sink[T]) bool {
			if !state.passing {
				if pred(val) {
					return true
				}
				state.passing = true
			}
			return down.Push(val)
		},
	)
}
