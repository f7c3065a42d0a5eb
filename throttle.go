package fluxion

import (
	"time"

	"github.com/fluxion/fluxion/runtime"
)

// Throttle emits a Value immediately, then silently drops every further
// Value until d has elapsed since that emission (leading-edge throttling).
// Once the cooldown expires, the next arriving Value is emitted and a new
// cooldown starts. Errors bypass throttling entirely: they are emitted
// immediately and never start or extend a cooldown.
func Throttle[T any](s Stream[T], d time.Duration, rt runtime.Runtime) Stream[T] {
	if rt == nil {
		rt = defaultRuntime()
	}
	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		var stopTimer func()
		var timerC <-chan runtime.Instant
		cooling := false

		cancelTimer := func() {
			if stopTimer != nil {
				stopTimer()
				stopTimer = nil
				timerC = nil
			}
		}
		defer cancelTimer()

		for {
			select {
			case item, ok := <-s:
				if !ok {
					return
				}
				if item.IsError() {
					out <- item
					continue
				}
				if cooling {
					continue
				}
				out <- item
				cooling = true
				timerC, stopTimer = rt.Sleep(d)

			case <-timerC:
				stopTimer = nil
				timerC = nil
				cooling = false
			}
		}
	}()

	return out
}
