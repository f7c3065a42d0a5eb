package fluxion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithLatestFrom_PairsOnPrimaryOnly(t *testing.T) {
	primary := make(chan StreamItem[string])
	secondary := make(chan StreamItem[int])

	out := WithLatestFrom[string, int](primary, secondary)

	go func() {
		defer close(secondary)
		secondary <- NewValue(1)
		secondary <- NewValue(2)
	}()

	// Let both secondary updates land in the cache before the primary
	// value arrives, so the pairing is deterministic.
	time.Sleep(20 * time.Millisecond)

	go func() {
		defer close(primary)
		primary <- NewValue("a")
	}()

	var got []Pair[string, int]
	for item := range out {
		v, _ := item.Value()
		got = append(got, v)
	}

	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].Primary)
	require.Equal(t, 2, got[0].Secondary)
}

func TestWithLatestFrom_DropsPrimaryBeforeAnySecondary(t *testing.T) {
	primary := FromSlice([]string{"early"})
	secondary := Empty[int]()

	got := Collect(WithLatestFrom[string, int](primary, secondary))
	require.Empty(t, got)
}

func TestWithLatestFrom_EndsWhenPrimaryEndsRegardlessOfSecondary(t *testing.T) {
	primary := make(chan StreamItem[string])
	secondary := make(chan StreamItem[int])

	out := WithLatestFrom[string, int](primary, secondary)

	go func() {
		secondary <- NewValue(1)
		// Secondary never closes; WithLatestFrom must still end once
		// primary is exhausted.
	}()

	// Let the secondary value land in the cache before the primary value
	// arrives, so the pairing is deterministic.
	time.Sleep(20 * time.Millisecond)

	go func() {
		defer close(primary)
		primary <- NewValue("a")
	}()

	got := Collect(out)
	require.Len(t, got, 1)
}

func TestWithLatestFrom_ErrorsPassThroughImmediately(t *testing.T) {
	primary := make(chan StreamItem[string])
	secondary := make(chan StreamItem[int])

	go func() {
		defer close(primary)
		primary <- NewError[string](ErrInvalidState)
	}()
	go func() {
		defer close(secondary)
	}()

	out := Collect(WithLatestFrom[string, int](primary, secondary))
	require.Len(t, out, 1)
	require.True(t, out[0].IsError())
}
