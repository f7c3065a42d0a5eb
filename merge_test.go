package fluxion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intTimestampOf(v int) Timestamp { return Timestamp(v) }

func TestOrderedMerge_InterleavesByTimestamp(t *testing.T) {
	a := Source[int]{Stream: FromSlice([]int{1, 3, 5}), Name: "a", TimestampOf: intTimestampOf}
	b := Source[int]{Stream: FromSlice([]int{2, 4, 6}), Name: "b", TimestampOf: intTimestampOf}

	out := Collect(OrderedMerge([]Source[int]{a, b}))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, collectValues(out))
}

func TestOrderedMerge_TiesBrokenBySourceIndex(t *testing.T) {
	a := Source[int]{Stream: FromSlice([]int{10, 20}), Name: "a", TimestampOf: func(int) Timestamp { return 1 }}
	b := Source[int]{Stream: FromSlice([]int{30}), Name: "b", TimestampOf: func(int) Timestamp { return 1 }}

	out := Collect(OrderedMerge([]Source[int]{a, b}))
	vs := collectValues(out)
	require.Equal(t, 10, vs[0]) // source a wins the tie on timestamp 1
	require.Contains(t, vs, 20)
	require.Contains(t, vs, 30)
}

func TestOrderedMerge_EmptySourcesEndsImmediately(t *testing.T) {
	out := Collect(OrderedMerge[int](nil))
	require.Empty(t, out)
}

func TestOrderedMerge_ErrorsEmittedImmediatelyInArrivalOrder(t *testing.T) {
	src := make(chan StreamItem[int])
	go func() {
		defer close(src)
		src <- NewError[int](ErrInvalidState)
		src <- NewValue(1)
	}()

	a := Source[int]{Stream: src, Name: "a", TimestampOf: intTimestampOf}
	out := Collect(OrderedMerge([]Source[int]{a}))

	require.Len(t, out, 2)
	require.True(t, out[0].IsError())
	v, _ := out[1].Value()
	require.Equal(t, 1, v)
}

func TestOrderedMerge_SingleSourcePreservesOrder(t *testing.T) {
	a := Source[int]{Stream: FromSlice([]int{5, 1, 9, 2}), Name: "a", TimestampOf: intTimestampOf}
	out := Collect(OrderedMerge([]Source[int]{a}))
	require.Equal(t, []int{5, 1, 9, 2}, collectValues(out))
}
