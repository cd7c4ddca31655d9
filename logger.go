package gather

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// LogLevel represents the severity level for logging messages.
type LogLevel string

const (
	// LogLevelDebug is used for detailed information.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is used for general information messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is used for warning conditions.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is used for error conditions.
	LogLevelError LogLevel = "error"
)

// Logger defines an interface for logging at different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

// LogConfig holds configuration for run logging. All fields can be
// customized individually; zero values fall back to the documented
// defaults.
type LogConfig struct {
	// Logger receives the log messages. Defaults to slog.Default().
	Logger Logger

	// Args are additional arguments to include in all log messages.
	Args []any

	// LevelSuccess is the log level used for completed runs.
	// Defaults to LogLevelDebug.
	LevelSuccess LogLevel
	// LevelCancel is the log level used for canceled runs.
	// Defaults to LogLevelWarn.
	LevelCancel LogLevel
	// LevelFailure is the log level used for failed runs.
	// Defaults to LogLevelError.
	LevelFailure LogLevel

	// MessageSuccess is the message logged for completed runs.
	// Defaults to "GATHER: Success".
	MessageSuccess string
	// MessageCancel is the message logged for canceled runs.
	// Defaults to "GATHER: Cancel".
	MessageCancel string
	// MessageFailure is the message logged for failed runs.
	// Defaults to "GATHER: Failure".
	MessageFailure string
}

func parseLogLevel(level LogLevel) LogLevel {
	return LogLevel(strings.ToLower(string(level)))
}

func (c *LogConfig) parse() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	c.LevelSuccess = parseLogLevel(c.LevelSuccess)
	if c.LevelSuccess == "" {
		c.LevelSuccess = LogLevelDebug
	}
	c.LevelCancel = parseLogLevel(c.LevelCancel)
	if c.LevelCancel == "" {
		c.LevelCancel = LogLevelWarn
	}
	c.LevelFailure = parseLogLevel(c.LevelFailure)
	if c.LevelFailure == "" {
		c.LevelFailure = LogLevelError
	}
	if c.MessageSuccess == "" {
		c.MessageSuccess = "GATHER: Success"
	}
	if c.MessageCancel == "" {
		c.MessageCancel = "GATHER: Cancel"
	}
	if c.MessageFailure == "" {
		c.MessageFailure = "GATHER: Failure"
	}
}

func (c *LogConfig) logFunc(level LogLevel) func(msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		return c.Logger.Debug
	case LogLevelWarn:
		return c.Logger.Warn
	case LogLevelError:
		return c.Logger.Error
	default:
		return c.Logger.Info
	}
}

// NewMetricsLogger creates a MetricsCollector that logs one message per
// finished run, at a level chosen by the run's outcome.
func NewMetricsLogger(config LogConfig) MetricsCollector {
	config.parse()
	logSuccess := config.logFunc(config.LevelSuccess)
	logCancel := config.logFunc(config.LevelCancel)
	logFailure := config.logFunc(config.LevelFailure)
	return func(m *RunMetrics) {
		args := append(slices.Clone(config.Args),
			"run_id", m.RunID,
			"in", m.In,
			"out", m.Out,
			"duration", m.Duration,
		)
		switch {
		case m.Err == nil:
			logSuccess(config.MessageSuccess, args...)
		case errors.Is(m.Err, ErrCancel):
			logCancel(config.MessageCancel, append(args, "error", m.Err)...)
		default:
			logFailure(config.MessageFailure, append(args, "error", m.Err)...)
		}
	}
}

func newMetricsLogger(config *LogConfig) MetricsCollector {
	if config == nil {
		return nil
	}
	return NewMetricsLogger(*config)
}
