package fluxion

// Stream is a receive-only channel of StreamItem[T]: the sole carrier
// type for every Fluxion pipeline. A stream ends when the channel is
// closed; there is no sentinel item.
type Stream[T any] <-chan StreamItem[T]

// FromSlice returns a cold stream that, once consumed, emits each element
// of vs as a Value in order and then ends. Construction spawns the
// feeding goroutine eagerly (the standard Go channel-pipeline idiom), but
// the unbuffered channel means no element is produced until the consumer
// is ready to receive it, so no work happens ahead of actual consumption.
func FromSlice[T any](vs []T) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for _, v := range vs {
			out <- NewValue(v)
		}
	}()
	return out
}

// FromChannel adapts a plain value channel into a Stream, wrapping every
// received value as a Value item. The returned stream ends when in is
// closed.
func FromChannel[T any](in <-chan T) Stream[T] {
	out := make(chan StreamItem[T])
	go func() {
		defer close(out)
		for v := range in {
			out <- NewValue(v)
		}
	}()
	return out
}

// Empty returns a stream that ends immediately without emitting anything.
func Empty[T any]() Stream[T] {
	out := make(chan StreamItem[T])
	close(out)
	return out
}

// Collect drains s fully and returns every item in arrival order. Intended
// for tests and small finite streams; collect a large or infinite stream
// and you will block forever, as with any full channel drain.
func Collect[T any](s Stream[T]) []StreamItem[T] {
	var out []StreamItem[T]
	for item := range s {
		out = append(out, item)
	}
	return out
}
