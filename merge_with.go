package fluxion

import (
	"sync"

	"github.com/fluxion/fluxion/runtime"
)

// Reducer folds an incoming item from one of MergeWith's streams into the
// shared state and returns the output to emit downstream. Reducers must
// not suspend, since they run synchronously while MergeWith holds the
// shared mutex; there is accordingly no context argument to accidentally
// block on.
type Reducer[T, S, O any] func(item StreamItem[T], state *S) O

// MergeWith is the stateful, seeded variant of the merge family. Unlike
// OrderedMerge it is not timestamp-ordered: emissions interleave by
// arrival (a select, not a merge-sort), and every added stream's reducer
// runs under one shared mutex against one shared state value.
//
// MergeWith starts empty; call Add to bring in a stream one at a time,
// including after the merge has already started running. Close stops
// accepting new streams; once every added stream has ended, the output
// stream closes.
type MergeWith[T, S, O any] struct {
	mu    runtime.Mutex
	state S

	out chan StreamItem[O]

	bookkeeping sync.Mutex
	outstanding int
	closed      bool
	closeOnce   sync.Once
}

// NewMergeWith constructs a MergeWith seeded with the given initial
// state. rt supplies the Mutex guarding the shared state; pass nil to use
// the default parallel runtime.
func NewMergeWith[T, S, O any](rt runtime.Runtime, initial S) *MergeWith[T, S, O] {
	if rt == nil {
		rt = defaultRuntime()
	}
	return &MergeWith[T, S, O]{
		mu:    rt.NewMutex(),
		state: initial,
		out:   make(chan StreamItem[O]),
	}
}

// Out returns the merged output stream.
func (m *MergeWith[T, S, O]) Out() Stream[O] { return m.out }

// Add brings in a new stream with its reducer. Add is a no-op once Close
// has been called.
func (m *MergeWith[T, S, O]) Add(s Stream[T], r Reducer[T, S, O]) {
	m.bookkeeping.Lock()
	if m.closed {
		m.bookkeeping.Unlock()
		return
	}
	m.outstanding++
	m.bookkeeping.Unlock()

	go m.drain(s, r)
}

// Close stops accepting new streams. The output stream ends once all
// already-added streams have ended (immediately if none are in flight).
func (m *MergeWith[T, S, O]) Close() {
	m.bookkeeping.Lock()
	already := m.closed
	m.closed = true
	done := m.outstanding == 0
	m.bookkeeping.Unlock()

	if !already && done {
		m.closeOutput()
	}
}

func (m *MergeWith[T, S, O]) drain(s Stream[T], r Reducer[T, S, O]) {
	for item := range s {
		var o O
		if err := m.mu.WithLock(func() { o = r(item, &m.state) }); err != nil {
			logWarn("fluxion: merge_with reducer recovered from panic", "error", err)
			m.out <- NewError[O](NewLockError("merge_with reducer", err))
			continue
		}
		m.out <- NewValue(o)
	}

	m.bookkeeping.Lock()
	m.outstanding--
	done := m.closed && m.outstanding == 0
	m.bookkeeping.Unlock()

	if done {
		m.closeOutput()
	}
}

func (m *MergeWith[T, S, O]) closeOutput() {
	m.closeOnce.Do(func() { close(m.out) })
}
