package gather

// Sink is the downstream push target of a gatherer. It reports whether the
// downstream is still accepting values: false means the consumer wants no
// more, and the caller should stop pushing.
type Sink[R any] func(R) bool

// Push sends a value downstream and reports whether further values are
// still wanted.
func (s Sink[R]) Push(val R) bool {
	return s(val)
}

// Initializer creates the private state for one pipeline run. It is called
// exactly once per run, before the first element is integrated.
type Initializer[A any] func() A

// Integrator integrates one element into the run state, optionally pushing
// any number of values downstream. Returning false stops the run: remaining
// input is skipped and the finisher is invoked. A well-behaved integrator
// returns false after the sink rejects a push.
type Integrator[A, T, R any] func(state A, val T, down Sink[R]) bool

// Combiner merges two states produced by independently processed
// sub-sequences into one. It must be associative: the executor may merge
// partial states in any grouping.
type Combiner[A any] func(A, A) A

// Finisher runs once at the end of a pipeline run, whether the source was
// exhausted or the run stopped early, and may push trailing values
// downstream.
type Finisher[A, R any] func(state A, down Sink[R])

// Gatherer describes a stateful intermediate sequence operation: it
// consumes elements of type T, threads private state of type A through the
// run, and emits values of type R. Combiner and finisher are optional; a
// gatherer without a combiner is restricted to sequential execution.
type Gatherer[T, A, R any] struct {
	initializer Initializer[A]
	integrator  Integrator[A, T, R]
	combiner    Combiner[A]
	finisher    Finisher[A, R]
}

// Of creates a gatherer from an initializer and an integrator. The result
// has no combiner and no finisher; attach them with WithCombiner and
// WithFinisher. Panics if either function is nil.
func Of[T, A, R any](
	initialize Initializer[A],
	integrate Integrator[A, T, R],
) Gatherer[T, A, R] {
	if initialize == nil {
		panic("gather: nil initializer")
	}
	if integrate == nil {
		panic("gather: nil integrator")
	}
	return Gatherer[T, A, R]{
		initializer: initialize,
		integrator:  integrate,
	}
}

// OfSequential creates a sequential-only gatherer with an optional finisher.
// A nil finisher means no trailing output.
func OfSequential[T, A, R any](
	initialize Initializer[A],
	integrate Integrator[A, T, R],
	finish Finisher[A, R],
) Gatherer[T, A, R] {
	g := Of(initialize, integrate)
	g.finisher = finish
	return g
}

// WithCombiner returns a copy of g able to merge states from independently
// processed sub-sequences, enabling partitioned execution with
// GatherParallel. The combine function must be associative. Panics if
// combine is nil.
func (g Gatherer[T, A, R]) WithCombiner(combine Combiner[A]) Gatherer[T, A, R] {
	if combine == nil {
		panic("gather: nil combiner")
	}
	g.combiner = combine
	return g
}

// WithFinisher returns a copy of g that invokes finish once at the end of
// every run. Panics if finish is nil.
func (g Gatherer[T, A, R]) WithFinisher(finish Finisher[A, R]) Gatherer[T, A, R] {
	if finish == nil {
		panic("gather: nil finisher")
	}
	g.finisher = finish
	return g
}

// Parallelizable reports whether g carries a combiner and may therefore be
// run over partitioned input.
func (g Gatherer[T, A, R]) Parallelizable() bool {
	return g.combiner != nil
}

// noState initializes the state of gatherers that need none.
func noState() struct{} {
	return struct{}{}
}
