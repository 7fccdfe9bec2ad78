package threadpool

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/threadpool/ufunc"
)

// task is one scheduled unit of work: the erased thunk, the exactly-once
// claim gate, and the completion signal shared between the queue and the
// Future.
//
// State machine: pending --claim--> running --finish--> completed. The
// claim transition is an atomic test-and-set; whichever thread wins it —
// a worker dequeuing the task or a consumer blocked in Future.Get —
// becomes the sole executor. The loser observes claimed and waits on done
// instead of re-running. Claiming does not involve the pool, so the gate
// works even after shutdown.
type task struct {
	thunk   *ufunc.UniqueFunc[Void]
	claimed atomic.Bool
	ready   atomic.Bool
	done    chan struct{}
	obs     *instruments
}

func newTask(thunk func(), obs *instruments) *task {
	return &task{
		thunk: ufunc.New(func() Void { thunk(); return Void{} }),
		done:  make(chan struct{}),
		obs:   obs,
	}
}

// tryRun executes the thunk iff this call wins the claim, and reports
// whether it did. Safe to call from any number of goroutines; the thunk
// runs at most once across all of them. The thunk must not let a panic
// escape.
func (t *task) tryRun() bool {
	if !t.claimed.CompareAndSwap(false, true) {
		return false
	}

	start := time.Now()
	_, _ = t.thunk.Call()
	// Release the captures now; futures may outlive the pool.
	t.thunk.Reset()

	t.ready.Store(true)
	if t.obs != nil {
		t.obs.completed.Add(1)
		t.obs.runTime.Record(time.Since(start).Seconds())
	}
	close(t.done)
	return true
}

func (t *task) isReady() bool { return t.ready.Load() }

func (t *task) wait() { <-t.done }

func (t *task) waitContext(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
