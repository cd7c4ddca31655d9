package throttle

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Semaphore bounds the number of resources in use at once. Unlike an
// Allower, acquired resources must be released.
type Semaphore struct {
	sem *semaphore.Weighted
}

// NewSemaphore creates a Semaphore with the given capacity.
func NewSemaphore(capacity int64) *Semaphore {
	return &Semaphore{
		sem: semaphore.NewWeighted(capacity),
	}
}

// Acquire takes a single resource, blocking until one is available or ctx
// is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	return s.AcquireN(ctx, 1)
}

// AcquireN takes n resources, blocking until they are available or ctx is
// done.
func (s *Semaphore) AcquireN(ctx context.Context, n int64) error {
	return s.sem.Acquire(ctx, n)
}

// Release returns a single resource.
func (s *Semaphore) Release() {
	s.ReleaseN(1)
}

// ReleaseN returns n resources.
func (s *Semaphore) ReleaseN(n int64) {
	s.sem.Release(n)
}
