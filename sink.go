package fluxion

import (
	"context"
	"sync"
)

// ForEachAsync drains s on the caller's own goroutine, calling f for
// every item (Value and Error alike), and returns once s closes. It
// blocks; callers wanting a background sink should use SubscribeAsync.
func ForEachAsync[T any](s Stream[T], f func(StreamItem[T])) {
	for item := range s {
		f(item)
	}
}

// SubscribeAsync drains s on a background task spawned from opts'
// runtime.Runtime, calling f for every item in order. The returned
// TaskGuard cancels the subscription and waits for in-flight delivery to
// stop; cancelling mid-stream abandons s without draining it.
func SubscribeAsync[T any](s Stream[T], f func(StreamItem[T]), opts ...Option) *TaskGuard {
	cfg := buildConfig(opts...)

	token := NewCancelToken()
	var wg sync.WaitGroup
	wg.Add(1)
	guard := newTaskGuard(token, &wg)

	cfg.Runtime.Spawn(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		for {
			select {
			case item, ok := <-s:
				if !ok {
					return
				}
				f(item)
			case <-token.Cancelled():
				return
			case <-ctx.Done():
				return
			}
		}
	})

	return guard
}

// SubscribeLatestAsync drains s on a background task the same way
// SubscribeAsync does, except f is only ever given the most recent item
// still unconsumed: if f is slow and several items arrive while it runs,
// only the latest replaces the pending one, and the rest are dropped
// rather than queued. Errors participate in this same latest-only
// discipline; an Error can be dropped by a later Value or Error exactly
// as a Value can.
func SubscribeLatestAsync[T any](s Stream[T], f func(StreamItem[T]), opts ...Option) *TaskGuard {
	cfg := buildConfig(opts...)

	token := NewCancelToken()
	var wg sync.WaitGroup
	wg.Add(1)
	guard := newTaskGuard(token, &wg)

	cfg.Runtime.Spawn(context.Background(), func(ctx context.Context) {
		defer wg.Done()

		var mu sync.Mutex
		var pending StreamItem[T]
		havePending := false
		sourceDone := false
		wake := make(chan struct{}, 1)

		notify := func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		}

		go func() {
			for {
				select {
				case item, ok := <-s:
					if !ok {
						mu.Lock()
						sourceDone = true
						mu.Unlock()
						notify()
						return
					}
					mu.Lock()
					pending = item
					havePending = true
					mu.Unlock()
					notify()
				case <-token.Cancelled():
					return
				case <-ctx.Done():
					return
				}
			}
		}()

		for {
			select {
			case <-wake:
				mu.Lock()
				item, has := pending, havePending
				havePending = false
				done := sourceDone
				mu.Unlock()
				if has {
					f(item)
				}
				if done {
					return
				}
			case <-token.Cancelled():
				return
			case <-ctx.Done():
				return
			}
		}
	})

	return guard
}
