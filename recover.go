package gather

import "fmt"

// RecoveryError wraps a panic value raised inside a user-supplied function
// together with the stack trace at the point of panic. The channel executor
// produces it when WithRecover is enabled; the run is aborted and the
// finisher is not invoked.
type RecoveryError struct {
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.PanicValue)
}
