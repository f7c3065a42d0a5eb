package fluxion

import (
	"time"

	"github.com/fluxion/fluxion/runtime"
)

// Debounce emits a Value only once d has elapsed since the most recent
// Value arrived, carrying that most recent Value. Any newer Value arriving
// before the timer fires resets the wait and replaces the pending Value.
// Errors bypass debouncing entirely: they are emitted immediately and do
// not reset or cancel a pending timer.
func Debounce[T any](s Stream[T], d time.Duration, rt runtime.Runtime) Stream[T] {
	if rt == nil {
		rt = defaultRuntime()
	}
	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		var stopTimer func()
		var timerC <-chan runtime.Instant
		var pending T
		havePending := false

		cancelPending := func() {
			if stopTimer != nil {
				stopTimer()
				stopTimer = nil
				timerC = nil
			}
		}
		defer cancelPending()

		for {
			select {
			case item, ok := <-s:
				if !ok {
					if havePending {
						out <- NewValue(pending)
					}
					return
				}
				if item.IsError() {
					out <- item
					continue
				}
				v, _ := item.Value()
				pending = v
				havePending = true
				cancelPending()
				timerC, stopTimer = rt.Sleep(d)

			case <-timerC:
				stopTimer = nil
				timerC = nil
				out <- NewValue(pending)
				havePending = false
			}
		}
	}()

	return out
}
