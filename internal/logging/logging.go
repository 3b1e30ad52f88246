// Package logging builds the structured zap logger shared by the CLI and
// the planner, configured the way the teacher corpus's CLI agent
// configures its own logger (spec.md §7): production config by default,
// debug level under --verbose, synced once on process exit.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger at the requested level. level is one of
// "debug", "info", "warn", "error"; anything else falls back to "info".
// verbose, when true, forces debug level regardless of level.
func New(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
