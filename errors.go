package gather

import (
	"errors"
	"fmt"
)

var (
	// ErrFailure indicates a pipeline run aborted on a fault.
	ErrFailure = errors.New("gather: run failed")
	// ErrCancel indicates an input value was dropped because the run no
	// longer wants it.
	ErrCancel = errors.New("gather: run canceled")
	// ErrSequential indicates partitioned execution was requested for a
	// gatherer without a combiner.
	ErrSequential = errors.New("gather: gatherer is sequential-only")
)

func newErrFailure(cause error) error {
	if cause == nil {
		return ErrFailure
	}
	return fmt.Errorf("%w: %w", ErrFailure, cause)
}

func newErrCancel(cause error) error {
	if cause == nil {
		return ErrCancel
	}
	return fmt.Errorf("%w: %w", ErrCancel, cause)
}
