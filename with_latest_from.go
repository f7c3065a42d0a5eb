package fluxion

// Pair is the output of WithLatestFrom: a primary value paired with the
// latest cached secondary value at the time the primary arrived.
type Pair[P, S any] struct {
	Primary   P
	Secondary S
}

// WithLatestFrom emits Pair{primary, latest secondary} on every primary
// Value, provided the secondary has produced at least one Value so far.
// Secondary-only values update the cache silently and never themselves
// cause an emission. Errors from either stream pass through immediately.
func WithLatestFrom[P, S any](primary Stream[P], secondary Stream[S]) Stream[Pair[P, S]] {
	out := make(chan StreamItem[Pair[P, S]])

	type event struct {
		fromPrimary bool
		item        StreamItem[P]
		sitem       StreamItem[S]
		ok          bool
	}

	events := make(chan event)
	stop := make(chan struct{})

	go func() {
		for item := range primary {
			select {
			case events <- event{fromPrimary: true, item: item, ok: true}:
			case <-stop:
				return
			}
		}
		select {
		case events <- event{fromPrimary: true, ok: false}:
		case <-stop:
		}
	}()
	go func() {
		for item := range secondary {
			select {
			case events <- event{fromPrimary: false, sitem: item, ok: true}:
			case <-stop:
				return
			}
		}
		select {
		case events <- event{fromPrimary: false, ok: false}:
		case <-stop:
		}
	}()

	go func() {
		defer close(out)
		defer close(stop)

		var latestSecondary S
		haveSecondary := false

		for {
			ev := <-events
			if ev.fromPrimary {
				if !ev.ok {
					// Primary exhausted: no further pairs can ever be
					// emitted, so the stream ends here regardless of
					// whether the secondary is still live.
					return
				}
				if ev.item.IsError() {
					out <- NewError[Pair[P, S]](ev.item.Err())
					continue
				}
				if !haveSecondary {
					continue
				}
				v, _ := ev.item.Value()
				out <- NewValue(Pair[P, S]{Primary: v, Secondary: latestSecondary})
				continue
			}

			if !ev.ok {
				// Secondary exhausted: the cached value stays, so later
				// primary values keep pairing with it until the primary
				// ends.
				continue
			}
			if ev.sitem.IsError() {
				out <- NewError[Pair[P, S]](ev.sitem.Err())
				continue
			}
			v, _ := ev.sitem.Value()
			latestSecondary = v
			haveSecondary = true
		}
	}()

	return out
}
