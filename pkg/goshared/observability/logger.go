// Package observability provides structured logging helpers, metrics and
// tracing for command execution.
//
// Features:
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds command context to a logger.
// Returns a new logger with run_id, command, and attempt fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "0b7c...", "git", 1)
//	enriched.Info("cloning") // includes run_id, command, attempt
func EnrichLogger(logger *slog.Logger, runID, command string, attempt int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("command", command),
		slog.Int("attempt", attempt),
	)
}

// LogCommandStart logs the start of a command.
func LogCommandStart(logger *slog.Logger, runID string, args []string) {
	if logger == nil {
		return
	}
	logger.Debug("command starting",
		slog.String("run_id", runID),
		slog.Any("args", args),
	)
}

// LogCommandComplete logs successful command completion.
func LogCommandComplete(logger *slog.Logger, runID string, exitCode int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("command completed",
		slog.String("run_id", runID),
		slog.Int("exit_code", exitCode),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCommandError logs command failure. exitCode is -1 when the command
// never produced an exit status.
func LogCommandError(logger *slog.Logger, runID string, err error, exitCode int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("command failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Int("exit_code", exitCode),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogRetry logs a failed attempt that will be retried.
func LogRetry(logger *slog.Logger, runID string, attempt int, err error, backoff time.Duration) {
	if logger == nil {
		return
	}
	logger.Warn("command attempt failed, retrying",
		slog.String("run_id", runID),
		slog.Int("attempt", attempt),
		slog.String("error", err.Error()),
		slog.Duration("backoff", backoff),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
