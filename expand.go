package gather

import "iter"

// Map transforms each element one-to-one. Panics if fn is nil.
func Map[T, R any](fn func(T) R) Gatherer[T, struct{}, R] {
	if fn == nil {
		panic("gather: nil map function")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[R]) bool {
			return down.Push(fn(val))
		},
	)
}

// Filter passes through the elements for which pred returns true. Panics
// if pred is nil.
func Filter[T any](pred func(T) bool) Gatherer[T, struct{}, T] {
	if pred == nil {
		panic("gather: nil predicate")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[T]) bool {
			if !pred(val) {
				return true
			}
			return down.Push(val)
		},
	)
}

// Peek invokes fn on every element and passes it through unchanged. Panics
// if fn is nil.
func Peek[T any](fn func(T)) Gatherer[T, struct{}, T] {
	if fn == nil {
		panic("gather: nil peek function")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[T]) bool {
			fn(val)
			return down.Push(val)
		},
	)
}

// Expand replaces each element with the sequence produced by fn, pushing
// the produced values downstream in order. This is the one-to-many
// counterpart of Map: an element may expand to zero, one, or many values.
// When the downstream rejects a value mid-expansion, the remaining values
// for that element are dropped and the run stops. Panics if fn is nil.
func Expand[T, R any](fn func(T) iter.Seq[R]) Gatherer[T, struct{}, R] {
	if fn == nil {
		panic("gather: nil expander")
	}
	return Of(noState,
		func(_ struct{}, val T, down Sink[R]) bool {
			for out := range fn(val) {
				if !down.Push(out) {
					return false
				}
			}
			return true
		},
	)
}
