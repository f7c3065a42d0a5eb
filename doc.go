// Package fluxion provides asynchronous, composable operators over
// push/pull event streams with first-class temporal ordering.
//
// Core protocol
//   - StreamItem[T] is the uniform value/error wrapper that flows through
//     every pipeline (item.go).
//   - Stream[T] is a receive-only channel of StreamItem[T]. Operators are
//     functions from Stream[T] to Stream[T] (or to some combinator's
//     output type) and compose by chaining.
//
// Operator families
//   - Ordered merge: OrderedMerge, the k-way timestamp-synchronized
//     multiplexer (merge.go). The combinators below read their inputs
//     on their own and do not go through it.
//   - Combinators: CombineLatest, WithLatestFrom, TakeLatestWhen,
//     EmitWhen, MergeWith (combine_latest.go, with_latest_from.go,
//     take_latest_when.go, emit_when.go, merge_with.go).
//   - Linear operators: MapOrdered, FilterOrdered, ScanOrdered,
//     DistinctUntilChanged, Tap, SkipItems, TakeItems, StartWith,
//     OnError, SampleRatio, WindowByCount (operators.go).
//   - Time operators: Delay, Debounce, Throttle, Sample, Timeout, each a
//     small timer-driven state machine (delay.go, debounce.go,
//     throttle.go, sample.go, timeout.go).
//   - Hot sharing: FluxionSubject and Share (subject.go, share.go), and
//     Partition (partition.go).
//   - Sinks: ForEachAsync, SubscribeAsync, SubscribeLatestAsync (sink.go).
//
// Runtime abstraction
// Operators that need a background task (Share, FluxionSubject,
// Partition) and the time operators consume a capability set from
// fluxion/runtime (Timer, Mutex, Spawn, CancellationToken) rather than a
// concrete executor, so identical semantics hold across the parallel,
// cooperative, and embedded runtime variants.
//
// Defaults
// Unless overridden via Option, the following defaults apply:
//   - Runtime: runtime.NewParallel()
//   - Metrics: metrics.NewNoopProvider()
//   - Merge/subject internal buffers: unbuffered (synchronous backpressure)
//
// Channel lifecycle
// Fluxion streams end by channel close, never by a sentinel item. A
// pipeline always ends cleanly: either upstream end propagates, or a
// final Error item is emitted immediately before the channel closes.
package fluxion
