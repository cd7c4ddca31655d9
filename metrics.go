package gather

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RunMetrics holds metrics for a single pipeline run.
type RunMetrics struct {
	RunID    uuid.UUID
	Start    time.Time
	Duration time.Duration

	// In is the number of elements handed to the integrator.
	In int
	// Out is the number of values accepted by the downstream.
	Out int
	// Stopped is true when the run ended on a cooperative stop signal
	// rather than source exhaustion.
	Stopped bool

	Err error
}

// Success returns a numeric indicator of success (1 for success, 0 otherwise).
func (m *RunMetrics) Success() int {
	if m.Err == nil {
		return 1
	}
	return 0
}

// Failure returns a numeric indicator of failure (1 for failure, 0 otherwise).
func (m *RunMetrics) Failure() int {
	if errors.Is(m.Err, ErrFailure) {
		return 1
	}
	return 0
}

// Cancel returns a numeric indicator of cancellation (1 for cancel, 0 otherwise).
func (m *RunMetrics) Cancel() int {
	if errors.Is(m.Err, ErrCancel) {
		return 1
	}
	return 0
}

// MetricsCollector defines a function that collects run metrics.
type MetricsCollector func(*RunMetrics)

func newRunMetrics() *RunMetrics {
	return &RunMetrics{
		RunID: uuid.New(),
		Start: time.Now(),
	}
}

func newMetricsDistributor(collectors ...MetricsCollector) MetricsCollector {
	switch len(collectors) {
	case 0:
		return nil
	case 1:
		return collectors[0]
	}
	return func(m *RunMetrics) {
		for _, c := range collectors {
			c(m)
		}
	}
}
