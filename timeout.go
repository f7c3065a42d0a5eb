package fluxion

import (
	"time"

	"github.com/fluxion/fluxion/runtime"
)

// Timeout re-arms a d-duration timer after every item (Value or Error)
// and after the stream starts. If the timer fires before the next item
// arrives, Timeout emits a KindTimeout Error and re-arms the deadline
// rather than ending the stream: s is never cancelled by a timeout, and
// further items resume normal flow once they arrive.
func Timeout[T any](s Stream[T], d time.Duration, rt runtime.Runtime) Stream[T] {
	if rt == nil {
		rt = defaultRuntime()
	}
	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		timerC, stop := rt.Sleep(d)
		defer func() { stop() }()

		for {
			select {
			case item, ok := <-s:
				if !ok {
					return
				}
				stop()
				out <- item
				timerC, stop = rt.Sleep(d)

			case <-timerC:
				out <- NewError[T](NewTimeoutError("no item received before the configured deadline", d))
				timerC, stop = rt.Sleep(d)
			}
		}
	}()

	return out
}
