package fluxion

import (
	"sync"
)

// Shared is a cold-to-hot adapter: Share wraps a cold Stream[T] so it can
// be subscribed to any number of times, with every subscriber seeing the
// same items from the moment it subscribes onward. The underlying source
// is pulled by exactly one background forwarding task, started lazily on
// the first Subscribe and stopped once the last subscriber releases its
// subscription.
type Shared[T any] struct {
	mu      sync.Mutex
	source  Stream[T]
	subject *FluxionSubject[T]
	opts    []Option

	refs    int
	started bool
	guard   *TaskGuard
}

// Share constructs a hot adapter over source. Nothing is pulled from
// source until the first Subscribe call.
func Share[T any](source Stream[T], opts ...Option) *Shared[T] {
	return &Shared[T]{source: source, opts: opts}
}

// Subscribe returns a stream of every item forwarded from the source
// starting now, and a release function the caller must call exactly once
// when done. Once every outstanding release has been called, the
// forwarding task stops and the source is abandoned (not drained).
func (sh *Shared[T]) Subscribe() (Stream[T], func()) {
	sh.mu.Lock()
	if sh.subject == nil {
		sh.subject = NewFluxionSubject[T](sh.opts...)
	}
	sh.refs++
	// Register before the forwarding task starts, so the first subscriber
	// also sees the source's first item.
	sub := sh.subject.Subscribe()
	if !sh.started {
		sh.started = true
		sh.startForwarding()
	}
	sh.mu.Unlock()

	var released sync.Once
	release := func() {
		released.Do(func() { sh.release() })
	}

	return sub, release
}

func (sh *Shared[T]) startForwarding() {
	token := NewCancelToken()
	var wg sync.WaitGroup
	wg.Add(1)
	sh.guard = newTaskGuard(token, &wg)

	subject := sh.subject
	source := sh.source

	go func() {
		defer wg.Done()
		for {
			select {
			case item, ok := <-source:
				if !ok {
					subject.Close()
					return
				}
				if item.IsError() {
					subject.SendError(item.Err())
					continue
				}
				v, _ := item.Value()
				subject.Send(v)
			case <-token.Cancelled():
				subject.Close()
				return
			}
		}
	}()
}

func (sh *Shared[T]) release() {
	sh.mu.Lock()
	sh.refs--
	done := sh.refs <= 0
	guard := sh.guard
	sh.mu.Unlock()

	if done && guard != nil {
		guard.Close()
	}
}
