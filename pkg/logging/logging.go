// Package logging builds the structured zap logger shared by the harness,
// the agent clients and the driver. The verification core itself stays
// log-free; it is a pure library.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug|info|warn|error
	Format string // "json" or "console"
}

// New creates a structured logger.
func New(config Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = parseLevel(config.Level)
	if config.Format != "" {
		zapConfig.Encoding = config.Format
	}
	zapConfig.DisableStacktrace = true
	return zapConfig.Build()
}

// WithRun tags a logger with the run-wide fields every case log line carries.
func WithRun(logger *zap.Logger, model string, seed int64) *zap.Logger {
	return logger.With(zap.String("model", model), zap.Int64("seed", seed))
}

func parseLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
}
