package fluxion

import (
	"log/slog"
	"sync/atomic"
)

// logger is the package-level structured logger used for operator-
// internal, non-fatal conditions; MergeWith logs through it when a
// reducer panic is recovered and converted to an in-band error. It
// defaults to slog.Default() and can be overridden with SetLogger.
var logger atomic.Pointer[slog.Logger]

// tracingEnabled gates the "tracing" build option: logTrace writes at
// slog.LevelDebug only while it is true. No operator calls logTrace, so
// enabling it produces no output.
var tracingEnabled atomic.Bool

func init() {
	logger.Store(slog.Default())
}

// SetLogger overrides the package-level logger. Passing nil restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger.Store(l)
}

// EnableTracing sets the flag that logTrace checks. Disabled by default.
func EnableTracing(enabled bool) { tracingEnabled.Store(enabled) }

func logWarn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

func logTrace(msg string, args ...any) {
	if tracingEnabled.Load() {
		logger.Load().Debug(msg, args...)
	}
}
