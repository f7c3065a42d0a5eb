package fluxion

import "fmt"

// StreamItem is the sole type flowing through every Fluxion pipeline.
// It is exactly one of Value(T) or Error(E): never both, never neither.
type StreamItem[T any] struct {
	value   T
	err     error
	isError bool
}

// NewValue wraps a normal datum.
func NewValue[T any](v T) StreamItem[T] {
	return StreamItem[T]{value: v}
}

// NewError wraps a typed error. err must not be nil; NewError(nil) panics.
func NewError[T any](err error) StreamItem[T] {
	if err == nil {
		panic("fluxion: NewError called with nil error")
	}
	return StreamItem[T]{err: err, isError: true}
}

// IsError reports whether the item carries an error rather than a value.
func (si StreamItem[T]) IsError() bool { return si.isError }

// Value returns the wrapped value and true, or the zero value and false
// if this item is an Error.
func (si StreamItem[T]) Value() (T, bool) {
	if si.isError {
		var zero T
		return zero, false
	}
	return si.value, true
}

// Err returns the wrapped error, or nil if this item is a Value.
func (si StreamItem[T]) Err() error { return si.err }

// MustValue returns the wrapped value, panicking if this item is an Error.
// Intended for test helpers and call sites that have already checked IsError.
func (si StreamItem[T]) MustValue() T {
	if si.isError {
		panic(fmt.Sprintf("fluxion: MustValue called on error item: %v", si.err))
	}
	return si.value
}

func (si StreamItem[T]) String() string {
	if si.isError {
		return fmt.Sprintf("Error(%v)", si.err)
	}
	return fmt.Sprintf("Value(%v)", si.value)
}

// Timestamped is the timestamp capability every T flowing through an
// ordered operator must provide: a read-only accessor plus a constructor
// that returns a copy carrying a (possibly different) timestamp.
//
// Errors carry no timestamp; the Timestamped
// constraint therefore only applies to the inner value type of a
// StreamItem, never to StreamItem itself.
type Timestamped[T any] interface {
	Timestamp() Timestamp
	WithTimestamp(Timestamp) T
}

// CombinedState is the output of CombineLatest: an immutable vector of
// the most recent value per input stream plus the maximum contributing
// timestamp. Read-only after construction; len(Values) always equals the
// number of input streams passed to CombineLatest.
type CombinedState[T any] struct {
	Values    []T
	Timestamp Timestamp
}

// At returns the latest value received from source index i.
func (cs CombinedState[T]) At(i int) T { return cs.Values[i] }

// Len returns the number of input streams.
func (cs CombinedState[T]) Len() int { return len(cs.Values) }
