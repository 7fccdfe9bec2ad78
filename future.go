package threadpool

import (
	"context"
	"sync/atomic"
)

// outcome is the typed result slot shared between the submit thunk and
// the Future. The thunk writes it before the completion signal fires;
// readers only look after the signal, so no further synchronization is
// needed.
type outcome[T any] struct {
	value T
	err   error
}

// Future is the consumer handle for one submitted task.
//
// Get first tries to claim and run the task on the calling goroutine (the
// rescue path); only if another thread already claimed it does Get block
// on the completion signal. Rescue is what keeps recursive submission
// deadlock-free: when every worker is itself blocked in Get, the blocked
// consumers execute the queued tasks directly instead of waiting for a
// free worker. Claiming does not require the pool to be alive, so rescue
// keeps working after Close.
type Future[T any] struct {
	t        *task
	out      *outcome[T]
	consumed atomic.Bool
}

// Get runs or awaits the task, then returns its outcome. The result is
// consumed: a second Get returns the zero value and ErrFutureConsumed.
// A non-nil error is either the callable's own error or ErrTaskPanicked
// wrapping the recovered panic value.
func (f *Future[T]) Get() (T, error) {
	f.rescue()
	f.t.wait()
	return f.take()
}

// GetContext is Get with the wait bounded by ctx. The context does not
// cancel the task: on ctx expiry the task may still run later, and the
// future remains consumable by a subsequent Get.
func (f *Future[T]) GetContext(ctx context.Context) (T, error) {
	f.rescue()
	if err := f.t.waitContext(ctx); err != nil {
		var zero T
		return zero, err
	}
	return f.take()
}

// Wait blocks until the task has completed, without consuming the result.
// Unlike Get, Wait never executes the task on the calling goroutine: a
// task nobody ever claims (e.g. abandoned at Close) blocks Wait forever.
func (f *Future[T]) Wait() { f.t.wait() }

// WaitContext is Wait bounded by ctx.
func (f *Future[T]) WaitContext(ctx context.Context) error {
	return f.t.waitContext(ctx)
}

// Done returns a channel that is closed when the task has completed.
func (f *Future[T]) Done() <-chan struct{} { return f.t.done }

// Ready reports whether the task has completed. A snapshot.
func (f *Future[T]) Ready() bool { return f.t.isReady() }

func (f *Future[T]) rescue() {
	if f.t.tryRun() && f.t.obs != nil {
		f.t.obs.rescued.Add(1)
	}
}

func (f *Future[T]) take() (T, error) {
	if !f.consumed.CompareAndSwap(false, true) {
		var zero T
		return zero, ErrFutureConsumed
	}
	return f.out.value, f.out.err
}
