package runtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParallelRuntime_SleepFiresAfterDuration(t *testing.T) {
	rt := NewParallel()
	start := time.Now()

	c, stop := rt.Sleep(20 * time.Millisecond)
	<-c
	stop()

	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestParallelRuntime_StopBeforeFireIsSafe(t *testing.T) {
	rt := NewParallel()
	_, stop := rt.Sleep(time.Hour)
	require.NotPanics(t, stop)
	require.NotPanics(t, stop) // calling twice is also safe
}

func TestParallelRuntime_SpawnRunsFnAndSignalsDone(t *testing.T) {
	rt := NewParallel()
	ran := make(chan struct{})

	h := rt.Spawn(context.Background(), func(ctx context.Context) {
		close(ran)
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("spawned fn never ran")
	}

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("task handle never reported done")
	}
}

func TestParallelRuntime_SpawnCancelStopsContext(t *testing.T) {
	rt := NewParallel()
	cancelled := make(chan struct{})

	h := rt.Spawn(context.Background(), func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	})

	h.Cancel()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("spawned context was never cancelled")
	}
	require.True(t, h.IsCancelled())
}

func TestParallelRuntime_SpawnCancelIsIdempotent(t *testing.T) {
	rt := NewParallel()
	h := rt.Spawn(context.Background(), func(ctx context.Context) { <-ctx.Done() })
	h.Cancel()
	require.NotPanics(t, h.Cancel)
}

func TestParallelRuntime_MutexWithLock(t *testing.T) {
	rt := NewParallel()
	m := rt.NewMutex()

	var n int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.WithLock(func() { n++ })
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, n)
}

func TestParallelRuntime_MutexRecoversPanic(t *testing.T) {
	rt := NewParallel()
	m := rt.NewMutex()

	err := m.WithLock(func() { panic("boom") })
	require.Error(t, err)

	// The mutex must not be left held after a recovered panic.
	unlocked := make(chan struct{})
	go func() {
		_ = m.WithLock(func() {})
		close(unlocked)
	}()

	select {
	case <-unlocked:
	case <-time.After(time.Second):
		t.Fatal("mutex remained locked after a recovered panic")
	}
}
