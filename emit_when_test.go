package fluxion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmitWhen_PassesValuesOnlyWhileGateOpen(t *testing.T) {
	filter := make(chan StreamItem[bool])
	source := make(chan StreamItem[int])

	out := EmitWhen[int, bool](source, filter, func(g bool) bool { return g })

	go func() {
		defer close(filter)
		filter <- NewValue(true)
	}()
	time.Sleep(20 * time.Millisecond)

	go func() {
		defer close(source)
		source <- NewValue(1)
		source <- NewValue(2)
	}()

	got := Collect(out)
	require.Len(t, got, 2)
}

func TestEmitWhen_DropsValuesBeforeAnyGate(t *testing.T) {
	source := FromSlice([]int{1, 2, 3})
	filter := Empty[bool]()

	got := Collect(EmitWhen[int, bool](source, filter, func(g bool) bool { return g }))
	require.Empty(t, got)
}

func TestEmitWhen_DropsValuesWhileGateClosed(t *testing.T) {
	filter := make(chan StreamItem[bool])
	source := make(chan StreamItem[int])

	out := EmitWhen[int, bool](source, filter, func(g bool) bool { return g })

	go func() {
		defer close(filter)
		filter <- NewValue(false)
	}()
	time.Sleep(20 * time.Millisecond)

	go func() {
		defer close(source)
		source <- NewValue(1)
	}()

	got := Collect(out)
	require.Empty(t, got)
}

func TestEmitWhen_ErrorsPassThroughImmediately(t *testing.T) {
	source := make(chan StreamItem[int])
	filter := make(chan StreamItem[bool])

	go func() {
		defer close(source)
		source <- NewError[int](ErrInvalidState)
	}()
	go func() {
		defer close(filter)
	}()

	got := Collect(EmitWhen[int, bool](source, filter, func(bool) bool { return true }))
	require.Len(t, got, 1)
	require.True(t, got[0].IsError())
}
