package fluxion

import (
	"time"

	"github.com/fluxion/fluxion/runtime"
)

// Sample caches the latest Value continuously and, every d, emits that
// cached Value provided at least one new Value arrived since the previous
// tick. A tick with no fresh Value since the last one emits nothing.
// Errors bypass sampling entirely: they are emitted immediately as they
// arrive.
func Sample[T any](s Stream[T], d time.Duration, rt runtime.Runtime) Stream[T] {
	if rt == nil {
		rt = defaultRuntime()
	}
	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		timerC, stop := rt.Sleep(d)
		defer func() { stop() }()

		var latest T
		haveFresh := false

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
				v, _ := item.Value()
				latest = v
				haveFresh = true

			case <-timerC:
				if haveFresh {
					out <- NewValue(latest)
					haveFresh = false
				}
				timerC, stop = rt.Sleep(d)
			}
		}
	}()

	return out
}
