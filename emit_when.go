package fluxion

// EmitWhen gates source values behind a filter stream: the filter stream
// carries a latest "gate" value, and gate evaluates it to decide whether
// the gate is currently open. Source values are passed through while the
// gate is open and silently dropped while it is closed (or before any
// gate value has arrived at all). No source buffering happens beyond
// whatever is already in flight on the channel — this is a live filter,
// not a queue. Errors from either stream pass through immediately.
func EmitWhen[S, G any](source Stream[S], filterStream Stream[G], gate func(G) bool) Stream[S] {
	out := make(chan StreamItem[S])

	type event struct {
		fromSource bool
		sitem      StreamItem[S]
		gitem      StreamItem[G]
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
		for item := range filterStream {
			select {
			case events <- event{fromSource: false, gitem: item, ok: true}:
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

		open := false
		haveGate := false
		sourceEnded, gateEnded := false, false

		for !(sourceEnded && gateEnded) {
			ev := <-events
			if ev.fromSource {
				if !ev.ok {
					sourceEnded = true
					continue
				}
				if ev.sitem.IsError() {
					out <- ev.sitem
					continue
				}
				if haveGate && open {
					out <- ev.sitem
				}
				continue
			}

			if !ev.ok {
				gateEnded = true
				continue
			}
			if ev.gitem.IsError() {
				out <- NewError[S](ev.gitem.Err())
				continue
			}
			g, _ := ev.gitem.Value()
			open = gate(g)
			haveGate = true
		}
	}()

	return out
}
