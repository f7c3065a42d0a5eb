package fluxion

// CombineLatest takes a primary stream plus n-1 secondary streams (total
// n) and a filter predicate over CombinedState, emitting a fresh
// CombinedState every time every slot is populated and the predicate
// accepts the new snapshot.
//
// Per-source latest Value slots start empty. Each incoming Value updates
// its slot; Error items pass through immediately without altering any
// slot. The emitted timestamp is the maximum of the contributing slots'
// timestamps. Emissions happen in source-arrival order of the event that
// caused them.
//
// CombineLatest over zero secondary streams (len(streams) == 1)
// degenerates to re-emitting the primary's values wrapped as a
// single-element CombinedState.
func CombineLatest[T any](
	streams []Stream[T],
	timestampOf func(T) Timestamp,
	filter func(CombinedState[T]) bool,
) Stream[CombinedState[T]] {
	out := make(chan StreamItem[CombinedState[T]])

	go func() {
		defer close(out)

		n := len(streams)
		if n == 0 {
			return
		}

		type event struct {
			idx  int
			item StreamItem[T]
			ok   bool
		}

		events := make(chan event)
		for i, s := range streams {
			go func(idx int, s Stream[T]) {
				for item := range s {
					events <- event{idx: idx, item: item, ok: true}
				}
				events <- event{idx: idx, ok: false}
			}(i, s)
		}

		slots := make([]T, n)
		populated := make([]bool, n)
		timestamps := make([]Timestamp, n)
		liveSources := n

		allPopulated := func() bool {
			for _, p := range populated {
				if !p {
					return false
				}
			}
			return true
		}

		maxTimestamp := func() Timestamp {
			max := timestamps[0]
			for _, ts := range timestamps[1:] {
				if ts > max {
					max = ts
				}
			}
			return max
		}

		for liveSources > 0 {
			ev := <-events
			if !ev.ok {
				liveSources--
				continue
			}
			if ev.item.IsError() {
				out <- NewError[CombinedState[T]](ev.item.Err())
				continue
			}

			v, _ := ev.item.Value()
			slots[ev.idx] = v
			timestamps[ev.idx] = timestampOf(v)
			populated[ev.idx] = true

			if !allPopulated() {
				continue
			}

			snapshot := CombinedState[T]{
				Values:    append([]T(nil), slots...),
				Timestamp: maxTimestamp(),
			}
			if filter(snapshot) {
				out <- NewValue(snapshot)
			}
		}
	}()

	return out
}
