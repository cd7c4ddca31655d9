package gather

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fxsml/gather/throttle"
)

// GatherParallel partitions src into at most partitions contiguous chunks,
// runs an independent initializer/integrator chain per chunk, merges the
// partial states pairwise with the gatherer's combiner, and invokes the
// finisher exactly once on the fully merged state. It returns
// ErrSequential when g carries no combiner.
//
// Values pushed during integration are collected per partition and
// concatenated in partition order; values pushed by the finisher follow
// them. No ordering beyond that concatenation is guaranteed. A stop signal
// from the integrator ends its own partition only. At most GOMAXPROCS
// partitions are processed at once regardless of the partition count.
func GatherParallel[T, A, R any](
	ctx context.Context,
	src []T,
	g Gatherer[T, A, R],
	partitions int,
) ([]R, error) {
	if !g.Parallelizable() {
		return nil, ErrSequential
	}
	// A single state per source element at most; an empty source still gets
	// one state so the finisher sees exactly one seed.
	partitions = max(1, min(partitions, len(src)))

	states := make([]A, partitions)
	outs := make([][]R, partitions)
	chunk := (len(src) + partitions - 1) / partitions

	sem := throttle.NewSemaphore(int64(runtime.GOMAXPROCS(0)))
	grp, ctx := errgroup.WithContext(ctx)
	for i := range partitions {
		lo := min(i*chunk, len(src))
		hi := min(lo+chunk, len(src))
		grp.Go(func() error {
			if err := sem.Acquire(ctx); err != nil {
				return err
			}
			defer sem.Release()

			state := g.initializer()
			down := Sink[R](func(val R) bool {
				outs[i] = append(outs[i], val)
				return true
			})
			for _, val := range src[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !g.integrator(state, val, down) {
					break
				}
			}
			states[i] = state
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	merged := states[0]
	for _, state := range states[1:] {
		merged = g.combiner(merged, state)
	}

	var result []R
	for _, part := range outs {
		result = append(result, part...)
	}
	if g.finisher != nil {
		g.finisher(merged, func(val R) bool {
			result = append(result, val)
			return true
		})
	}
	return result, nil
}
