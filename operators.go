package fluxion

import "math/rand/v2"

// MapOrdered transforms every Value with f, leaving Error items untouched
// and in their original position.
func MapOrdered[T, O any](s Stream[T], f func(T) O) Stream[O] {
	out := make(chan StreamItem[O])
	go func() {
		defer close(out)
		for item := range s {
			if item.IsError() {
				out <- NewError[O](item.Err())
				continue
			}
			v, _ := item.Value()
			out <- NewValue(f(v))
		}
	}()
	return out
}

// FilterOrdered drops Values that p rejects. Errors always pass through.
func FilterOrdered[T any](s Stream[T], p func(T) bool) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for item := range s {
			if item.IsError() {
				out <- item
				continue
			}
			v, _ := item.Value()
			if p(v) {
				out <- item
			}
		}
	}()
	return out
}

// ScanOrdered folds every Value into an accumulator seeded with init,
// emitting the accumulator after each fold. Errors pass through without
// touching the accumulator.
func ScanOrdered[T, A any](s Stream[T], init A, f func(A, T) A) Stream[A] {
	out := make(chan StreamItem[A])
	go func() {
		defer close(out)
		acc := init
		for item := range s {
			if item.IsError() {
				out <- NewError[A](item.Err())
				continue
			}
			v, _ := item.Value()
			acc = f(acc, v)
			out <- NewValue(acc)
		}
	}()
	return out
}

// DistinctUntilChanged drops a Value equal (==) to the immediately
// preceding Value. Errors always pass through and do not count as a
// "previous value" for comparison purposes.
func DistinctUntilChanged[T comparable](s Stream[T]) Stream[T] {
	return DistinctUntilChangedBy(s, func(a, b T) bool { return a == b })
}

// DistinctUntilChangedBy is DistinctUntilChanged with a caller-supplied
// equality function, for types that aren't comparable.
func DistinctUntilChangedBy[T any](s Stream[T], eq func(a, b T) bool) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		var prev T
		havePrev := false
		for item := range s {
			if item.IsError() {
				out <- item
				continue
			}
			v, _ := item.Value()
			if havePrev && eq(prev, v) {
				continue
			}
			prev = v
			havePrev = true
			out <- item
		}
	}()
	return out
}

// Tap calls f for every item (Value and Error alike) as it passes through,
// without altering the stream.
func Tap[T any](s Stream[T], f func(StreamItem[T])) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for item := range s {
			f(item)
			out <- item
		}
	}()
	return out
}

// SkipItems drops the first n items, counting both Values and Errors
// toward n.
func SkipItems[T any](s Stream[T], n int) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		skipped := 0
		for item := range s {
			if skipped < n {
				skipped++
				continue
			}
			out <- item
		}
	}()
	return out
}

// TakeItems passes through the first n items, counting both Values and
// Errors toward n, and then closes the output without draining the rest
// of s.
func TakeItems[T any](s Stream[T], n int) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		if n <= 0 {
			return
		}
		taken := 0
		for item := range s {
			out <- item
			taken++
			if taken >= n {
				return
			}
		}
	}()
	return out
}

// StartWith prepends xs, as Values, ahead of everything s produces.
func StartWith[T any](s Stream[T], xs ...T) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for _, x := range xs {
			out <- NewValue(x)
		}
		for item := range s {
			out <- item
		}
	}()
	return out
}

// OnError is the only operator permitted to consume an Error instead of
// forwarding it: h is called with the error, and its return value decides
// the error's fate — true swallows it (nothing is emitted for that item),
// false propagates the original Error item downstream unchanged. Values
// pass through unchanged.
func OnError[T any](s Stream[T], h func(error) bool) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for item := range s {
			if item.IsError() {
				if !h(item.Err()) {
					out <- item
				}
				continue
			}
			out <- item
		}
	}()
	return out
}

// SampleRatio keeps each Value with probability r (0 <= r <= 1), using a
// seeded math/rand/v2 PRNG so runs are reproducible given the same seed.
// Errors always pass through regardless of the dice roll.
func SampleRatio[T any](s Stream[T], r float64, seed uint64) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		rnd := rand.New(rand.NewPCG(seed, seed))
		for item := range s {
			if item.IsError() {
				out <- item
				continue
			}
			if rnd.Float64() < r {
				out <- item
			}
		}
	}()
	return out
}

// WindowByCount groups Values into slices of up to n, emitting a window
// every time it fills. An Error flushes whatever is currently buffered as
// a short window, then propagates the Error itself, then resumes
// accumulating a fresh window.
func WindowByCount[T any](s Stream[T], n int) Stream[StreamItem[[]T]] {
	out := make(chan StreamItem[StreamItem[[]T]])
	go func() {
		defer close(out)
		if n <= 0 {
			panic("fluxion: WindowByCount requires n > 0")
		}
		buf := make([]T, 0, n)
		flush := func() {
			if len(buf) == 0 {
				return
			}
			out <- NewValue(NewValue(buf))
			buf = make([]T, 0, n)
		}
		for item := range s {
			if item.IsError() {
				flush()
				out <- NewValue(NewError[[]T](item.Err()))
				continue
			}
			v, _ := item.Value()
			buf = append(buf, v)
			if len(buf) == n {
				flush()
			}
		}
		flush()
	}()
	return out
}
