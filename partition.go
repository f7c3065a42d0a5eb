package fluxion

import (
	"context"
	"sync"
)

// PartitionOutput is one side of a Partition: a stream plus an explicit
// Close the caller must invoke once it no longer intends to read from
// Stream. Closing one side never blocks or stops delivery to the other;
// once both sides have been closed, Partition's background task stops
// pulling from its source entirely.
type PartitionOutput[T any] struct {
	Stream Stream[T]
	Close  func()
}

// Partition splits source into two streams by pred: Values for which
// pred returns true go to the first (matched) output, everything else to
// the second (unmatched) output. Errors are broadcast to both outputs.
// One background task drives the whole split; only that task ever closes
// the two output channels, so a caller's Close can never race a send on
// the channel it abandons.
func Partition[T any](source Stream[T], pred func(T) bool, opts ...Option) (matched, unmatched PartitionOutput[T]) {
	cfg := buildConfig(opts...)

	matchedC := make(chan StreamItem[T], cfg.OutputBufferSize)
	unmatchedC := make(chan StreamItem[T], cfg.OutputBufferSize)
	matchedStopped := make(chan struct{})
	unmatchedStopped := make(chan struct{})

	var matchedStopOnce, unmatchedStopOnce sync.Once
	var bothMu sync.Mutex
	matchedDone, unmatchedDone := false, false

	token := NewCancelToken()
	var wg sync.WaitGroup
	wg.Add(1)
	guard := newTaskGuard(token, &wg)

	closeMatched := func() {
		matchedStopOnce.Do(func() {
			close(matchedStopped)
			bothMu.Lock()
			matchedDone = true
			done := matchedDone && unmatchedDone
			bothMu.Unlock()
			if done {
				guard.Close()
			}
		})
	}
	closeUnmatched := func() {
		unmatchedStopOnce.Do(func() {
			close(unmatchedStopped)
			bothMu.Lock()
			unmatchedDone = true
			done := matchedDone && unmatchedDone
			bothMu.Unlock()
			if done {
				guard.Close()
			}
		})
	}

	rt := cfg.Runtime
	rt.Spawn(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		defer close(matchedC)
		defer close(unmatchedC)

		sendMatched := func(item StreamItem[T]) {
			select {
			case matchedC <- item:
			case <-matchedStopped:
			}
		}
		sendUnmatched := func(item StreamItem[T]) {
			select {
			case unmatchedC <- item:
			case <-unmatchedStopped:
			}
		}

		for {
			select {
			case item, ok := <-source:
				if !ok {
					return
				}
				if item.IsError() {
					sendMatched(item)
					sendUnmatched(item)
					continue
				}
				v, _ := item.Value()
				if pred(v) {
					sendMatched(item)
				} else {
					sendUnmatched(item)
				}
			case <-token.Cancelled():
				return
			case <-ctx.Done():
				return
			}
		}
	})

	matched = PartitionOutput[T]{Stream: matchedC, Close: closeMatched}
	unmatched = PartitionOutput[T]{Stream: unmatchedC, Close: closeUnmatched}
	return matched, unmatched
}
