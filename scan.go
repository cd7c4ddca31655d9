package gather

type accState[A any] struct {
	acc A
}

// Scan emits the running accumulation of fn over the source: for every
// input element, exactly one output carrying the accumulated value so far.
// Panics if seed or fn is nil.
func Scan[T, A any](seed func() A, fn func(A, T) A) Gatherer[T, *accState[A], A] {
	if seed == nil {
		panic("gather: nil seed")
	}
	if fn == nil {
		panic("gather: nil accumulator")
	}
	return Of(
		func() *accState[A] {
			return &accState[A]{acc: seed()}
		},
		func(state *accState[A], val T, down Sink[A]) bool {
			state.acc = fn(state.acc, val)
			return down.Push(state.acc)
		},
	)
}

// Fold reduces the source to a single value emitted when the run ends.
// Fold always emits exactly one value: for an empty source it emits the
// seed untouched. The result is sequential-only; use FoldCombined to fold
// partitioned input. Panics if seed or fn is nil.
func Fold[T, A any](seed func() A, fn func(A, T) A) Gatherer[T, *accState[A], A] {
	if seed == nil {
		panic("gather: nil seed")
	}
	if fn == nil {
		panic("gather: nil accumulator")
	}
	return OfSequential(
		func() *accState[A] {
			return &accState[A]{acc: seed()}
		},
		func(state *accState[A], val T, _ Sink[A]) bool {
			state.acc = fn(state.acc, val)
			return true
		},
		func(state *accState[A], down Sink[A]) {
			down.Push(state.acc)
		},
	)
}

// FoldCombined is Fold with an associative merge of partial accumulations,
// enabling partitioned execution with GatherParallel. Panics if any
// function is nil.
func FoldCombined[T, A any](
	seed func() A,
	fn func(A, T) A,
	merge func(A, A) A,
) Gatherer[T, *accState[A], A] {
	if merge == nil {
		panic("gather: nil merge")
	}
	return Fold(seed, fn).WithCombiner(func(a, b *accState[A]) *accState[A] {
		a.acc = merge(a.acc, b.acc)
		return a
	})
}
