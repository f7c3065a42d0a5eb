package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ParallelRuntime is the multi-core, work-stealing-executor-flavored
// regime. Every item crossing an operator
// boundary under this regime must already be safe to move across
// goroutines; ParallelRuntime itself adds no extra synchronization beyond
// the Mutex it hands out for genuinely shared state (MergeWith's reducer
// state).
type ParallelRuntime struct {
	logger *slog.Logger
}

// NewParallel returns the default runtime: real wall-clock timers, a real
// sync.Mutex, and goroutine-based Spawn.
func NewParallel() *ParallelRuntime {
	return &ParallelRuntime{logger: slog.Default()}
}

// WithLogger returns a copy of rt using l for recovered-panic warnings.
func (rt *ParallelRuntime) WithLogger(l *slog.Logger) *ParallelRuntime {
	return &ParallelRuntime{logger: l}
}

func (rt *ParallelRuntime) Now() Instant { return time.Now() }

func (rt *ParallelRuntime) Sleep(d time.Duration) (<-chan Instant, func()) {
	t := time.NewTimer(d)
	return t.C, func() { t.Stop() }
}

// noopLogger returns a logger that discards everything, used by regimes
// (embedded) that have no sensible default sink.
func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (rt *ParallelRuntime) NewMutex() Mutex {
	l := rt.logger
	if l == nil {
		l = slog.Default()
	}
	return &poisonAwareMutex{logger: l}
}

func (rt *ParallelRuntime) Spawn(parent context.Context, fn func(ctx context.Context)) TaskHandle {
	ctx, cancel := context.WithCancel(parent)
	h := &taskHandle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				rt.logger.Warn("fluxion: recovered panic in spawned task", "panic", r)
			}
		}()
		fn(ctx)
	}()
	return h
}

// taskHandle is the shared TaskHandle implementation for the parallel and
// cooperative regimes, which have identical semantics.
type taskHandle struct {
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
}

func (h *taskHandle) Cancel() {
	if h.cancelled.CompareAndSwap(false, true) {
		h.cancel()
	}
}

func (h *taskHandle) IsCancelled() bool { return h.cancelled.Load() }

func (h *taskHandle) Done() <-chan struct{} { return h.done }

// poisonAwareMutex models a "poisoned mutex": a panic while the lock is
// held. sync.Mutex itself is never poisoned, but a critical section that
// panics would otherwise leave callers blocked forever if Unlock weren't
// deferred. WithLock defers Unlock unconditionally, recovers any panic
// from fn, logs a warning, and converts it into a recoverable error
// instead of re-panicking.
type poisonAwareMutex struct {
	mu     sync.Mutex
	logger *slog.Logger
}

func (m *poisonAwareMutex) WithLock(fn func()) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("fluxion: recovered panic under lock (poison recovery)", "panic", r)
			err = fmt.Errorf("fluxion: lock poisoned by recovered panic: %v", r)
		}
	}()
	fn()
	return nil
}
