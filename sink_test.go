package fluxion

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestForEachAsync_VisitsEveryItemInOrder(t *testing.T) {
	var mu sync.Mutex
	var seen []int

	ForEachAsync(FromSlice([]int{1, 2, 3}), func(item StreamItem[int]) {
		v, _ := item.Value()
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestSubscribeAsync_DrainsInBackground(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	done := make(chan struct{})

	guard := SubscribeAsync(FromSlice([]int{1, 2, 3}), func(item StreamItem[int]) {
		v, _ := item.Value()
		mu.Lock()
		seen = append(seen, v)
		if len(seen) == 3 {
			close(done)
		}
		mu.Unlock()
	})
	defer guard.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for SubscribeAsync to drain")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestSubscribeAsync_CloseStopsDelivery(t *testing.T) {
	src := make(chan StreamItem[int])
	var mu sync.Mutex
	var seen []int

	guard := SubscribeAsync[int](src, func(item StreamItem[int]) {
		v, _ := item.Value()
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	src <- NewValue(1)
	time.Sleep(20 * time.Millisecond)
	guard.Close()

	mu.Lock()
	require.Equal(t, []int{1}, seen)
	mu.Unlock()
}

func TestSubscribeLatestAsync_DropsSupersededItems(t *testing.T) {
	src := make(chan StreamItem[int])
	var mu sync.Mutex
	var seen []int
	release := make(chan struct{})
	done := make(chan struct{})

	guard := SubscribeLatestAsync[int](src, func(item StreamItem[int]) {
		v, _ := item.Value()
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
		if v == 1 {
			<-release // hold up delivery so 2 and 3 queue behind the wake signal
		}
		if v == 4 {
			close(done)
		}
	})
	defer guard.Close()

	src <- NewValue(1)
	time.Sleep(10 * time.Millisecond)
	src <- NewValue(2)
	src <- NewValue(3)
	time.Sleep(10 * time.Millisecond)
	close(release)
	src <- NewValue(4)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for SubscribeLatestAsync")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, seen[0])
	require.Equal(t, 4, seen[len(seen)-1])
	require.Less(t, len(seen), 4) // at least one of 2/3 was dropped as superseded
}
