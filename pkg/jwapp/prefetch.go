package jwapp

import (
	"context"

	"github.com/cczukit/cczukit-go/pkg/slogx"
)

// PrefetchHandle names the background training-plan fetch dispatched after
// login. The default behavior is fire-and-forget with failures swallowed;
// the handle exists so callers who do care can await the result or cancel
// the work instead of racing it.
type PrefetchHandle struct {
	cancel context.CancelFunc
	done   chan struct{}

	// Written once before done is closed; read only after.
	plan *TrainingPlan
	err  error
}

// Wait blocks until the prefetch finishes or ctx is done.
func (h *PrefetchHandle) Wait(ctx context.Context) (*TrainingPlan, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
		return h.plan, h.err
	}
}

// Cancel aborts the prefetch. Waiters observe the cancellation error.
func (h *PrefetchHandle) Cancel() { h.cancel() }

// Done is closed when the prefetch has finished, however it ended.
func (h *PrefetchHandle) Done() <-chan struct{} { return h.done }

// startPlanPrefetch launches the background fetch. The task inherits the
// login context's values (logger) but not its cancellation: the caller's
// login call returning must not kill the prefetch.
func (s *Session) startPlanPrefetch(ctx context.Context) {
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	handle := &PrefetchHandle{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.prefetch = handle
	s.mu.Unlock()

	go func() {
		defer close(handle.done)
		plan, err := s.TrainingPlan(taskCtx)
		if err != nil {
			// Best-effort only: log and swallow
			slogx.FromContext(taskCtx).Debug("training plan prefetch failed", "err", err)
			handle.err = err
			return
		}
		handle.plan = plan
	}()
}

// PlanPrefetch returns the handle of the most recent background prefetch,
// or nil when none was started.
func (s *Session) PlanPrefetch() *PrefetchHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefetch
}
