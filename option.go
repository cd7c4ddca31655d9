package gather

// CancelFunc handles input values that will not be processed, together with
// the reason they were dropped.
type CancelFunc[T any] func(T, error)

// Option configures behavior of the channel executor.
type Option[T any] func(*config[T])

type config[T any] struct {
	buffer     int
	recover    bool
	cancel     CancelFunc[T]
	collectors []MetricsCollector
	logConfig  *LogConfig
}

func parseOptions[T any](opts []Option[T]) config[T] {
	c := config[T]{
		cancel: func(T, error) {},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if logger := newMetricsLogger(c.logConfig); logger != nil {
		c.collectors = append(c.collectors, logger)
	}
	return c
}

// WithBuffer sets the capacity of the output channel. The default is an
// unbuffered channel.
func WithBuffer[T any](size int) Option[T] {
	return func(c *config[T]) {
		c.buffer = size
	}
}

// WithRecover converts panics raised inside the integrator into errors
// wrapping ErrFailure, reported through the cancel callback. The run is
// aborted and the finisher is not invoked, matching the behavior of an
// unrecovered fault.
func WithRecover[T any]() Option[T] {
	return func(c *config[T]) {
		c.recover = true
	}
}

// WithCancel sets the callback invoked for every input value the run drops:
// values remaining after an early stop or a cancellation (error wraps
// ErrCancel) and the value being integrated when a recovered fault aborts
// the run (error wraps ErrFailure).
func WithCancel[T any](cancel CancelFunc[T]) Option[T] {
	return func(c *config[T]) {
		if cancel != nil {
			c.cancel = cancel
		}
	}
}

// WithMetricsCollector adds a collector receiving the RunMetrics of the
// run when it ends. Can be used multiple times.
func WithMetricsCollector[T any](collect MetricsCollector) Option[T] {
	return func(c *config[T]) {
		if collect != nil {
			c.collectors = append(c.collectors, collect)
		}
	}
}

// WithLogger logs the outcome of the run according to logConfig.
func WithLogger[T any](logConfig LogConfig) Option[T] {
	return func(c *config[T]) {
		c.logConfig = &logConfig
	}
}

// WithSlog logs the outcome of the run using the default slog logger.
// Additional arguments are included in all log messages.
func WithSlog[T any](args ...any) Option[T] {
	return WithLogger[T](LogConfig{Args: args})
}
