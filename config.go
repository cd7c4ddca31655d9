package gather

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds channel-executor settings that are commonly supplied through
// the environment.
type Config struct {
	// Buffer is the capacity of the output channel.
	Buffer int `default:"0"`
	// Recover converts integrator panics into errors wrapping ErrFailure
	// instead of crashing the run's goroutine.
	Recover bool `default:"false"`
}

// ConfigFromEnv loads a Config from environment variables with the given
// prefix, "GATHER" when empty:
//
//	GATHER_BUFFER=16
//	GATHER_RECOVER=true
func ConfigFromEnv(prefix string) (Config, error) {
	if prefix == "" {
		prefix = "GATHER"
	}
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, fmt.Errorf("gather: load config: %w", err)
	}
	return c, nil
}

// WithConfig applies c to the executor options.
func WithConfig[T any](c Config) Option[T] {
	return func(cfg *config[T]) {
		cfg.buffer = c.Buffer
		cfg.recover = c.Recover
	}
}
