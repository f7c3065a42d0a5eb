package fluxion

import (
	"container/heap"

	"github.com/fluxion/fluxion/metrics"
)

// Source pairs a Stream with the Timestamped-ness required for ordered
// merging: OrderedMerge needs to read a timestamp off every value it
// pulls from each source without requiring the values themselves to
// implement any particular interface.
type Source[T any] struct {
	Stream Stream[T]
	// Name optionally labels the source for SourceMetaError diagnostics.
	Name string
	// TimestampOf reads the ordering key for a value pulled from this
	// source.
	TimestampOf func(T) Timestamp
}

// mergeItem is one pending heap entry: a value pulled from a source plus
// enough bookkeeping to break timestamp ties deterministically.
type mergeItem[T any] struct {
	ts     Timestamp
	srcIdx int
	value  T
}

type mergeHeap[T any] []mergeItem[T]

func (h mergeHeap[T]) Len() int { return len(h) }
func (h mergeHeap[T]) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	// Stable tie-break by source index: the order streams were added.
	return h[i].srcIdx < h[j].srcIdx
}
func (h mergeHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap[T]) Push(x any)   { *h = append(*h, x.(mergeItem[T])) }
func (h *mergeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pulled is what a per-source puller goroutine sends back to the merge
// coordinator: either a successfully pulled item, or the end-of-source
// signal (ok == false).
type pulled[T any] struct {
	srcIdx   int
	item     StreamItem[T]
	ts       Timestamp
	ok       bool
	panicked bool
}

// MergeOption configures OrderedMerge.
type MergeOption func(*mergeConfig)

type mergeConfig struct {
	metrics metrics.Provider
}

func defaultMergeConfig() mergeConfig {
	return mergeConfig{metrics: metrics.NewNoopProvider()}
}

// WithMergeMetrics attaches a metrics.Provider to OrderedMerge for heap
// depth and emitted/error counters.
func WithMergeMetrics(p metrics.Provider) MergeOption {
	return func(c *mergeConfig) { c.metrics = p }
}

// OrderedMerge is a k-way, time-synchronized multiplexer: it produces one
// stream emitting items in non-decreasing timestamp order with bounded
// memory (at most one pending item per source).
//
// Algorithm: a per-source goroutine pulls its stream one item at a time
// and reports back over a shared channel, one in-flight pull per source
// at a time. The coordinator goroutine maintains a min-heap of pending
// values keyed by timestamp with source index as a stable tie-break. It
// only pops the heap once every live (non-ended) source's current pull
// has resolved — all live sources must have a pending item before
// emission — and immediately requests the next pull from whichever
// source it just popped. Error items bypass the heap entirely and are
// emitted the moment they arrive, in that source's arrival order.
//
// A panic while pulling from a source is converted into an Error item
// tagged with that source's index/name, and the source is then treated
// as ended. The merge itself only ends once every source has ended and
// the heap is empty.
func OrderedMerge[T any](sources []Source[T], opts ...MergeOption) Stream[T] {
	cfg := defaultMergeConfig()
	for _, o := range opts {
		o(&cfg)
	}

	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		n := len(sources)
		if n == 0 {
			return
		}

		results := make(chan pulled[T])
		h := &mergeHeap[T]{}
		heap.Init(h)

		ended := make([]bool, n)
		endedCount := 0
		awaiting := 0

		requestPull := func(idx int) {
			if ended[idx] {
				return
			}
			awaiting++
			go pullOne(idx, sources[idx], results)
		}

		for i := range sources {
			requestPull(i)
		}

		for endedCount < n || h.Len() > 0 {
			if awaiting == 0 && h.Len() > 0 {
				top := heap.Pop(h).(mergeItem[T])
				out <- NewValue(top.value)
				cfg.metrics.UpDownCounter("fluxion_merge_heap_depth").Add(-1)
				cfg.metrics.Counter("fluxion_merge_emitted_total").Add(1)
				requestPull(top.srcIdx)
				continue
			}

			p := <-results
			awaiting--

			if !p.ok {
				if !ended[p.srcIdx] {
					ended[p.srcIdx] = true
					endedCount++
				}
				continue
			}

			if p.item.IsError() {
				out <- p.item
				cfg.metrics.Counter("fluxion_merge_errors_total").Add(1)
				if p.panicked {
					if !ended[p.srcIdx] {
						ended[p.srcIdx] = true
						endedCount++
					}
				} else {
					requestPull(p.srcIdx)
				}
				continue
			}

			v, _ := p.item.Value()
			heap.Push(h, mergeItem[T]{ts: p.ts, srcIdx: p.srcIdx, value: v})
			cfg.metrics.UpDownCounter("fluxion_merge_heap_depth").Add(1)
		}
	}()

	return out
}

// pullOne pulls exactly one item from source idx, computes its timestamp
// (for Value items), and reports the result. A panic anywhere in this
// process — most plausibly from a user-supplied TimestampOf — is
// recovered and converted into a tagged in-band error that also marks
// the source as ended.
func pullOne[T any](idx int, s Source[T], results chan<- pulled[T]) {
	defer func() {
		if r := recover(); r != nil {
			err := newSourceTaggedError(NewInvalidStateError("panic while pulling from merge source"), s.Name, idx)
			results <- pulled[T]{srcIdx: idx, item: NewError[T](err), ok: true, panicked: true}
		}
	}()
	v, open := <-s.Stream
	if !open {
		results <- pulled[T]{srcIdx: idx, ok: false}
		return
	}
	if v.IsError() {
		results <- pulled[T]{srcIdx: idx, item: v, ok: true}
		return
	}
	val, _ := v.Value()
	ts := s.TimestampOf(val)
	results <- pulled[T]{srcIdx: idx, item: v, ts: ts, ok: true}
}
