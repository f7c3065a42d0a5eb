package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedRuntime_SleepStillFires(t *testing.T) {
	rt := NewEmbedded()
	c, stop := rt.Sleep(10 * time.Millisecond)
	defer stop()

	select {
	case <-c:
	case <-time.After(time.Second):
		t.Fatal("embedded timer never fired")
	}
}

func TestEmbeddedRuntime_SpawnNeverRunsFnAndIsAlreadyCancelled(t *testing.T) {
	rt := NewEmbedded()
	ran := false

	h := rt.Spawn(context.Background(), func(ctx context.Context) {
		ran = true
	})

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("embedded Spawn's handle was never done")
	}

	require.True(t, h.IsCancelled())
	require.False(t, ran)
}

func TestEmbeddedRuntime_MutexStillWorks(t *testing.T) {
	rt := NewEmbedded()
	m := rt.NewMutex()

	n := 0
	err := m.WithLock(func() { n++ })
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
