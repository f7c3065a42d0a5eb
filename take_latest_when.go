package fluxion

// TakeLatestWhen couples a source stream to a trigger stream: the most
// recent source Value is cached continuously, and each trigger Value
// re-emits that cached value provided filter accepts the combined
// (source, trigger) snapshot. A trigger arriving before any source value
// has been cached is simply dropped — there is nothing to emit yet.
// Errors from either stream pass through immediately and do not disturb
// the cache.
func TakeLatestWhen[S, R any](source Stream[S], trigger Stream[R], filter func(latest S, trig R) bool) Stream[S] {
	out := make(chan StreamItem[S])

	type event struct {
		fromSource bool
		sitem      StreamItem[S]
		ritem      StreamItem[R]
		ok         bool
	}

	events := make(chan event)
	stop := make(chan struct{})

	go func() {
		for item := range source {
			select {
			case events <- event{fromSource: true, sitem: item, ok: true}:
			case <-stop:
				return
			}
		}
		select {
		case events <- event{fromSource: true, ok: false}:
		case <-stop:
		}
	}()
	go func() {
		for item := range trigger {
			select {
			case events <- event{fromSource: false, ritem: item, ok: true}:
			case <-stop:
				return
			}
		}
		select {
		case events <- event{fromSource: false, ok: false}:
		case <-stop:
		}
	}()

	go func() {
		defer close(out)
		defer close(stop)

		var latest S
		haveLatest := false
		sourceEnded, triggerEnded := false, false

		for !(sourceEnded && triggerEnded) {
			ev := <-events
			if ev.fromSource {
				if !ev.ok {
					sourceEnded = true
					continue
				}
				if ev.sitem.IsError() {
					out <- NewError[S](ev.sitem.Err())
					continue
				}
				v, _ := ev.sitem.Value()
				latest = v
				haveLatest = true
				continue
			}

			if !ev.ok {
				triggerEnded = true
				continue
			}
			if ev.ritem.IsError() {
				out <- NewError[S](ev.ritem.Err())
				continue
			}
			if !haveLatest {
				continue
			}
			trig, _ := ev.ritem.Value()
			if filter(latest, trig) {
				out <- NewValue(latest)
			}
		}
	}()

	return out
}
