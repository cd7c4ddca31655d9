// Package gather provides stateful intermediate operations over lazy
// sequences.
//
// A Gatherer generalizes map and filter: it owns private state for the
// duration of one pipeline run, may look at several elements together, may
// emit zero or more outputs per input, and may stop the run early. The
// contract has four parts: an Initializer creating the run state, an
// Integrator consuming one element at a time, an optional associative
// Combiner merging states from partitioned runs, and an optional Finisher
// emitting trailing output.
//
// Basic usage:
//
//	src := slices.Values([]int{1, 2, 3, 4, 5})
//	for window := range gather.WindowFixed[int](2).Gather(src) {
//		fmt.Println(window) // [1 2], [3 4], [5]
//	}
//
// Gatherers run against iter.Seq sources (Gather), slices (GatherSlice),
// channels (GatherChan), or partitioned slices (GatherParallel, for
// gatherers carrying a combiner). Compose fuses two gatherers into one.
// Execution is lazy and single-pass: infinite sources work as long as
// something downstream stops the run, signaled cooperatively by a false
// return from an integrator or sink.
//
// Construction is strict: nil functions and non-positive sizes panic before
// any run starts. A fault inside a user-supplied function propagates and
// aborts the run without invoking the finisher; cooperative stops always
// invoke it exactly once.
package gather
