package fluxion

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition_SplitsByPredicate(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 4, 5, 6})

	matched, unmatched := Partition(src, func(n int) bool { return n%2 == 0 })

	var wg sync.WaitGroup
	var evens, odds []StreamItem[int]
	wg.Add(2)
	go func() { defer wg.Done(); evens = Collect(matched.Stream) }()
	go func() { defer wg.Done(); odds = Collect(unmatched.Stream) }()
	wg.Wait()

	require.Equal(t, []int{2, 4, 6}, collectValues(evens))
	require.Equal(t, []int{1, 3, 5}, collectValues(odds))
}

func TestPartition_ErrorsBroadcastToBothSides(t *testing.T) {
	src := make(chan StreamItem[int])
	go func() {
		defer close(src)
		src <- NewError[int](ErrInvalidState)
	}()

	matched, unmatched := Partition[int](src, func(int) bool { return true })

	var wg sync.WaitGroup
	var m, u []StreamItem[int]
	wg.Add(2)
	go func() { defer wg.Done(); m = Collect(matched.Stream) }()
	go func() { defer wg.Done(); u = Collect(unmatched.Stream) }()
	wg.Wait()

	require.Len(t, m, 1)
	require.True(t, m[0].IsError())
	require.Len(t, u, 1)
	require.True(t, u[0].IsError())
}

func TestPartition_ClosingOneSideDoesNotStopTheOther(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 4})

	matched, unmatched := Partition(src, func(n int) bool { return n%2 == 0 })

	// Abandon the matched side immediately without draining it.
	matched.Close()

	got := Collect(unmatched.Stream)
	require.Equal(t, []int{1, 3}, collectValues(got))
}
