// Package runtime is the portable Timer/Mutex/task-spawn abstraction
// that lets Fluxion operators run identically across the
// parallel, cooperative single-threaded, and interrupt-driven embedded
// regimes. It provides a
// minimal interface plus a small set of concrete implementations,
// selected by the caller rather than by a compiled-in trait bound.
package runtime

import (
	"context"
	"errors"
	"time"
)

// ErrSpawnUnsupported is returned (conceptually; EmbeddedRuntime.Spawn's
// signature has no error return, so it manifests as an already-cancelled
// TaskHandle instead) when a caller asks the embedded regime to spawn a
// background task.
var ErrSpawnUnsupported = errors.New("runtime: embedded regime does not support Spawn")

// Instant is a point in time as seen by a Timer. Two Instants produced by
// the same Timer are totally ordered and support subtraction into a
// Duration.
type Instant = time.Time

// Timer is the host capability Fluxion's time operators and physical
// clock consume.
type Timer interface {
	// Now returns the current instant.
	Now() Instant
	// Sleep returns a channel that receives once after d has elapsed. The
	// returned stop function releases the timer's resources; calling it
	// after the timer has already fired is a safe no-op. Callers that
	// abandon the timer before it fires must call stop to avoid leaking
	// it.
	Sleep(d time.Duration) (c <-chan Instant, stop func())
}

// Mutex is the host capability guarding shared operator state
// (MergeWith's reducer state; FluxionSubject guards its subscriber list
// with its own sync.Mutex instead). Recovery from a poisoned
// lock is mandatory: WithLock always unlocks even if fn panics, converts
// the panic into a recoverable error, and logs a warning rather than
// leaving the mutex wedged or propagating the panic.
type Mutex interface {
	// WithLock runs fn while holding the lock. If fn panics, WithLock
	// recovers, logs a warning, and returns a non-nil error describing
	// the recovered panic; it never re-panics and never leaves the lock
	// held.
	WithLock(fn func()) error
}

// TaskHandle represents a spawned background task.
type TaskHandle interface {
	// Cancel requests the task stop. Idempotent.
	Cancel()
	// IsCancelled reports whether Cancel has been called.
	IsCancelled() bool
	// Done returns a channel closed when the task function returns.
	Done() <-chan struct{}
}

// CancellationToken is a clonable cooperative stop signal, independent of
// any particular spawned task.
type CancellationToken interface {
	Cancel()
	IsCancelled() bool
	Cancelled() <-chan struct{}
}

// Spawner runs a function in the background, handing it a context that is
// cancelled when the returned TaskHandle is cancelled or dropped by the
// caller's own bookkeeping. Only Share, FluxionSubject, and Partition
// require Spawn; every other operator is spawn-free.
type Spawner interface {
	Spawn(parent context.Context, fn func(ctx context.Context)) TaskHandle
}

// Runtime bundles the three capabilities an operator may need.
// EmbeddedRuntime implements Timer and Mutex, but its Spawn never runs fn
// and returns an already-cancelled TaskHandle.
type Runtime interface {
	Timer
	Spawner
	NewMutex() Mutex
}
