package fluxion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_BeforeAndCompare(t *testing.T) {
	a, b := Timestamp(1), Timestamp(2)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestLogicalClock_StrictlyIncreasing(t *testing.T) {
	clk := NewLogicalClock()
	prev := clk.Now()
	for i := 0; i < 100; i++ {
		next := clk.Now()
		require.True(t, prev.Before(next))
		prev = next
	}
}

func TestPhysicalClock_NonDecreasing(t *testing.T) {
	clk := NewPhysicalClock()
	a := clk.Now()
	b := clk.Now()
	require.True(t, a.Compare(b) <= 0)
}
