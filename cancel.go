package fluxion

import (
	"sync"
	"sync/atomic"
)

// CancelToken is a clonable cooperative stop signal. Cancel is idempotent
// and safe for concurrent use; Cancelled returns a channel that closes
// exactly once, when Cancel is first called, so any number of observers
// can wake up on it.
//
// CancelToken's zero value is not usable; construct with NewCancelToken.
type CancelToken struct {
	once      sync.Once
	done      chan struct{}
	cancelled atomic.Bool
}

// NewCancelToken returns a fresh, uncancelled token.
func NewCancelToken() *CancelToken {
	return &CancelToken{done: make(chan struct{})}
}

// Cancel marks the token cancelled. Safe to call more than once or
// concurrently; only the first call has an effect.
func (t *CancelToken) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		close(t.done)
	})
}

// IsCancelled reports whether Cancel has been called.
func (t *CancelToken) IsCancelled() bool { return t.cancelled.Load() }

// Cancelled returns a channel that is closed once Cancel is called.
func (t *CancelToken) Cancelled() <-chan struct{} { return t.done }
