package runtime

import (
	"log/slog"
)

// CooperativeRuntime is the single-threaded regime (a browser-like event
// loop or an interrupt-driven embedded executor that happens to support
// goroutines). Items and operator state need not be thread-safe under
// this regime, but Fluxion still uses the same Mutex shape uniformly for
// portability; on a true single-threaded host this Mutex never actually
// contends, so WithLock never blocks.
//
// CooperativeRuntime additionally documents re-entrancy with respect to
// multiple concurrent pipelines sharing one timer backend: each Sleep
// call allocates its own independent time.Timer, so pipelines never
// observe each other's deadlines.
type CooperativeRuntime struct {
	*ParallelRuntime
}

// NewCooperative returns a runtime with identical semantics to
// ParallelRuntime; the two variants differ only in the thread-safety
// bound they advertise to callers, never in observable operator
// behavior.
func NewCooperative() *CooperativeRuntime {
	return &CooperativeRuntime{ParallelRuntime: NewParallel()}
}

// WithLogger returns a copy of rt using l for recovered-panic warnings.
func (rt *CooperativeRuntime) WithLogger(l *slog.Logger) *CooperativeRuntime {
	return &CooperativeRuntime{ParallelRuntime: rt.ParallelRuntime.WithLogger(l)}
}

var (
	_ Timer   = (*CooperativeRuntime)(nil)
	_ Spawner = (*CooperativeRuntime)(nil)
)
