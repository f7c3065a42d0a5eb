package fluxion

import "sync"

// TaskGuard is a small owned value tying a background task's lifetime to
// the stream it serves. Calling Close (typically via defer) cancels the
// task and waits for it to observe cancellation before returning
// (cancel -> wait inflight).
//
// TaskGuard is safe to Close more than once or from multiple goroutines;
// only the first call runs the sequence.
type TaskGuard struct {
	token *CancelToken
	wg    *sync.WaitGroup
	once  sync.Once
}

// newTaskGuard returns a guard over a background goroutine that the
// caller has already launched with wg.Add(1) and a deferred wg.Done.
func newTaskGuard(token *CancelToken, wg *sync.WaitGroup) *TaskGuard {
	return &TaskGuard{token: token, wg: wg}
}

// Close cancels the guarded task and blocks until it has exited.
func (g *TaskGuard) Close() {
	g.once.Do(func() {
		g.token.Cancel()
		g.wg.Wait()
	})
}

// Cancelled reports whether the guard has already been closed.
func (g *TaskGuard) Cancelled() bool { return g.token.IsCancelled() }
