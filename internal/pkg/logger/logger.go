// Package logger exposes the process-wide structured logger used by the bridge.
//
// It wraps a Sugared Zap logger that writes JSON lines and, when an
// OpenTelemetry LoggerProvider has been registered by the telemetry package,
// tees every entry into the OTEL pipeline as well. Until Init is called every
// helper is a no-op, so library packages can log freely from tests.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/walletbridge/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// instrumentationName identifies log records forwarded to OpenTelemetry.
const instrumentationName = "github.com/gabapcia/walletbridge"

var (
	// logger is the global SugaredLogger. It starts as a no-op logger and is
	// replaced once by Init.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level  string    // minimum level (debug, info, warn, error, panic, fatal)
	output io.Writer // destination for JSON lines
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level. Calling Init more than once has no effect after the first
// successful call.
//
// Returns an error if the configured level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(instrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. Call it on shutdown.
func Sync() error {
	return logger.Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, keysAndValues...)
}
