package fluxion

import (
	"time"

	"github.com/fluxion/fluxion/runtime"
)

// Delay re-emits every Value d after Delay read it, preserving order.
// Each Value's timer starts as soon as the Value is read and runs
// concurrently with the timers of the Values around it, so Values that
// arrive close together leave Delay with the same gaps between them.
// The output is unbuffered: while a downstream send is blocked, Delay
// soon stops reading s, so a slow consumer holds back the source and the
// Values behind it. Errors bypass the delay queue entirely and are
// forwarded the instant they arrive, even if a Value ahead of them is
// still waiting out its timer.
func Delay[T any](s Stream[T], d time.Duration, rt runtime.Runtime) Stream[T] {
	if rt == nil {
		rt = defaultRuntime()
	}
	out := make(chan StreamItem[T])

	// pending holds one completion channel per in-flight delayed Value, in
	// arrival order; errs carries Error items, which skip this queue and
	// are handed to the forwarder directly.
	pending := make(chan (<-chan StreamItem[T]), 1)
	errs := make(chan StreamItem[T])

	go func() {
		defer close(pending)
		defer close(errs)
		for item := range s {
			if item.IsError() {
				errs <- item
				continue
			}
			item := item
			ready := make(chan StreamItem[T], 1)
			go func() {
				c, stop := rt.Sleep(d)
				<-c
				stop()
				ready <- item
			}()
			pending <- ready
		}
	}()

	go func() {
		defer close(out)

		pendingCh := pending
		errsCh := errs
		var cur <-chan StreamItem[T]
		// queue holds completion channels received while cur is still
		// waiting, so a pending timer never holds up the reader above.
		var queue []<-chan StreamItem[T]

		for pendingCh != nil || errsCh != nil || cur != nil || len(queue) > 0 {
			if cur == nil && len(queue) > 0 {
				cur, queue = queue[0], queue[1:]
			}
			if cur == nil {
				select {
				case err, ok := <-errsCh:
					if !ok {
						errsCh = nil
						continue
					}
					out <- err
				case ready, ok := <-pendingCh:
					if !ok {
						pendingCh = nil
						continue
					}
					cur = ready
				}
				continue
			}

			select {
			case err, ok := <-errsCh:
				if !ok {
					errsCh = nil
					continue
				}
				out <- err
			case ready, ok := <-pendingCh:
				if !ok {
					pendingCh = nil
					continue
				}
				queue = append(queue, ready)
			case v := <-cur:
				out <- v
				cur = nil
			}
		}
	}()

	return out
}
