package fluxion

import (
	"context"
	"sync"
)

// FluxionSubject is a hot, multicast sink: callers push items in with
// Send/SendError, and any number of independent subscribers each receive
// every item in the order it was pushed, starting from the moment they
// subscribed (no replay of items sent before Subscribe was called).
//
// A background task (spawned via the configured runtime.Runtime) owns
// the fan-out loop. The internal queue between Send and that loop is
// unbuffered, each subscriber channel holds OutputBufferSize items
// (default 0), and the loop delivers to subscribers one after another,
// so Send waits until every subscriber has taken or buffered the
// previous item. Subscriber queues are not unbounded.
// FluxionSubject is safe for concurrent use from any number of
// goroutines.
type FluxionSubject[T any] struct {
	mu   sync.Mutex
	subs map[int]chan StreamItem[T]
	next int

	events chan StreamItem[T]
	closed bool

	outputBuf uint
	guard     *TaskGuard
}

// NewFluxionSubject constructs a subject. The dispatch loop runs on opts'
// runtime.Runtime (default: the package-wide parallel runtime).
func NewFluxionSubject[T any](opts ...Option) *FluxionSubject[T] {
	cfg := buildConfig(opts...)

	subj := &FluxionSubject[T]{
		subs:      make(map[int]chan StreamItem[T]),
		events:    make(chan StreamItem[T]),
		outputBuf: cfg.OutputBufferSize,
	}

	token := NewCancelToken()
	var wg sync.WaitGroup
	wg.Add(1)
	subj.guard = newTaskGuard(token, &wg)

	cfg.Runtime.Spawn(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		subj.dispatch(ctx, token)
	})

	return subj
}

func (s *FluxionSubject[T]) dispatch(ctx context.Context, token *CancelToken) {
	for {
		select {
		case item, ok := <-s.events:
			if !ok {
				s.broadcastClose()
				return
			}
			s.broadcast(item)
		case <-token.Cancelled():
			s.broadcastClose()
			return
		case <-ctx.Done():
			s.broadcastClose()
			return
		}
	}
}

func (s *FluxionSubject[T]) broadcast(item StreamItem[T]) {
	s.mu.Lock()
	subs := make([]chan StreamItem[T], 0, len(s.subs))
	for _, c := range s.subs {
		subs = append(subs, c)
	}
	s.mu.Unlock()

	for _, c := range subs {
		c <- item
	}
}

func (s *FluxionSubject[T]) broadcastClose() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, c := range subs {
		close(c)
	}
}

// Subscribe registers a new subscriber and returns its stream. Items sent
// to the subject before this call are never delivered to it.
func (s *FluxionSubject[T]) Subscribe() Stream[T] {
	c := make(chan StreamItem[T], s.outputBuf)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		close(c)
		return c
	}
	id := s.next
	s.next++
	s.subs[id] = c
	return c
}

// Send pushes a Value to every current subscriber; subscribers registered
// later never receive it. After Close or SendError, Send does nothing.
func (s *FluxionSubject[T]) Send(v T) { s.send(NewValue(v)) }

// SendError broadcasts the error to every current subscriber, then closes
// the subject: no further Send/SendError call has any effect, and every
// subscriber stream (current and any that race in before the dispatch
// loop observes the close) closes once the error has been delivered.
func (s *FluxionSubject[T]) SendError(err error) {
	s.mu.Lock()
	already := s.closed
	s.closed = true
	s.mu.Unlock()
	if already {
		return
	}
	s.events <- NewError[T](err)
	close(s.events)
	s.guard.Close()
}

func (s *FluxionSubject[T]) send(item StreamItem[T]) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.events <- item
}

// Close stops accepting new items, closes every subscriber stream
// (current and any that race in before the dispatch loop observes the
// close), and waits for the dispatch loop to exit.
func (s *FluxionSubject[T]) Close() {
	s.mu.Lock()
	already := s.closed
	s.closed = true
	s.mu.Unlock()
	if already {
		return
	}
	close(s.events)
	s.guard.Close()
}
