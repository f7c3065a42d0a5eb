package runtime

import (
	"context"
	"time"
)

// EmbeddedRuntime models the interrupt-driven embedded regime. It
// provides Timer and Mutex but no working Spawn: operators that require
// a background task (Share, FluxionSubject, Partition) cannot be used
// under this regime. Spawn returns a TaskHandle that is already
// cancelled and never runs fn. It returns no error and logs nothing; the
// refusal is visible only through the handle's IsCancelled and Done.
//
// Go has no no_std mode; EmbeddedRuntime approximates the "heap-based
// queues disabled where possible" intent by using the same time.Timer
// backend as ParallelRuntime (the host still needs a monotonic clock)
// while documenting that callers targeting true bare-metal embedded Go
// targets (e.g. TinyGo) should provide their own Timer implementation.
type EmbeddedRuntime struct{}

// NewEmbedded returns the embedded-regime runtime.
func NewEmbedded() *EmbeddedRuntime { return &EmbeddedRuntime{} }

func (rt *EmbeddedRuntime) Now() Instant { return time.Now() }

func (rt *EmbeddedRuntime) Sleep(d time.Duration) (<-chan Instant, func()) {
	t := time.NewTimer(d)
	return t.C, func() { t.Stop() }
}

func (rt *EmbeddedRuntime) NewMutex() Mutex {
	return &poisonAwareMutex{logger: noopLogger()}
}

// Spawn always fails: the embedded regime has no Spawn capability. It
// returns a handle that reports itself already cancelled; fn is never
// invoked.
func (rt *EmbeddedRuntime) Spawn(_ context.Context, _ func(ctx context.Context)) TaskHandle {
	h := &taskHandle{cancel: func() {}, done: make(chan struct{})}
	h.Cancel()
	close(h.done)
	return h
}
