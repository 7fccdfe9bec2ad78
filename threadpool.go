package threadpool

import (
	"runtime"
	"sync"
)

// Wait selects ThreadPool.Wait behavior.
type Wait int

const (
	// WaitAsync drains the queue on the calling goroutine before
	// blocking, so the caller makes forward progress on pending work.
	WaitAsync Wait = iota

	// WaitSync blocks until in-flight tasks finish without helping.
	WaitSync
)

// ThreadPool runs submitted tasks on a fixed set of worker goroutines
// sharing one FIFO queue. The worker count is fixed at construction.
// ThreadPool is a concrete struct; methods are safe for concurrent use.
type ThreadPool struct {
	// noCopy prevents accidental copying of the pool.
	//go:nocopy
	nc noCopy

	cfg *config
	obs *instruments

	// mu guards queue, ongoing, and quit. workAvail wakes idle workers;
	// allComplete wakes Wait callers when ongoing reaches zero.
	mu          sync.Mutex
	queue       []*task
	ongoing     int
	quit        bool
	workAvail   *sync.Cond
	allComplete *sync.Cond

	poolSize  int
	workers   sync.WaitGroup
	closeOnce sync.Once
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the
// presence of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a pool and spawns poolSize worker goroutines. A poolSize of
// zero is valid: such a pool executes tasks only through rescue or
// Wait(WaitAsync) draining.
func New(poolSize uint, opts ...Option) (*ThreadPool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	p := &ThreadPool{
		cfg:      &cfg,
		obs:      newInstruments(cfg.Metrics),
		queue:    make([]*task, 0, cfg.QueueCapacity),
		poolSize: int(poolSize),
	}
	p.workAvail = sync.NewCond(&p.mu)
	p.allComplete = sync.NewCond(&p.mu)

	p.workers.Add(p.poolSize)
	for i := 0; i < p.poolSize; i++ {
		go p.work()
	}
	return p, nil
}

// enqueue pushes t onto the queue and wakes one idle worker.
func (p *ThreadPool) enqueue(t *task) error {
	p.mu.Lock()
	if p.quit {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.queue = append(p.queue, t)
	p.mu.Unlock()

	p.workAvail.Signal()
	p.obs.submitted.Add(1)
	return nil
}

// pop removes and returns the queue head. Callers hold p.mu.
func (p *ThreadPool) pop() (*task, bool) {
	if len(p.queue) == 0 {
		return nil, false
	}
	t := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return t, true
}

// runQueued runs a dequeued task and settles the ongoing counter. The
// claim gate makes the run idempotent: a task a consumer already rescued
// is a no-op here.
func (p *ThreadPool) runQueued(t *task) {
	p.obs.inflight.Add(1)
	t.tryRun()
	p.obs.inflight.Add(-1)

	p.mu.Lock()
	p.ongoing--
	p.mu.Unlock()
	p.allComplete.Broadcast()
}

// Wait blocks until the tasks in flight at call time have finished.
//
// With WaitAsync the calling goroutine first drains the queue itself,
// running each dequeued task; with WaitSync it skips the drain. Either
// way the final block inspects only the ongoing counter, not the queue:
// tasks submitted concurrently by other goroutines can race past a Wait
// call that returns early. Wait means "tasks in flight at call time are
// done", not a quiescence barrier.
func (p *ThreadPool) Wait(mode Wait) {
	if mode == WaitAsync {
		for {
			p.mu.Lock()
			t, ok := p.pop()
			if !ok {
				p.mu.Unlock()
				break
			}
			p.ongoing++
			p.mu.Unlock()

			p.runQueued(t)
		}
	}

	p.mu.Lock()
	for p.ongoing != 0 {
		p.allComplete.Wait()
	}
	p.mu.Unlock()
}

// IsWorking reports whether any task is executing or queued. A snapshot,
// not a synchronization point.
func (p *ThreadPool) IsWorking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ongoing > 0 || len(p.queue) > 0
}

// Tasks returns the number of tasks currently queued.
func (p *ThreadPool) Tasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// PoolSize returns the fixed worker count.
func (p *ThreadPool) PoolSize() int { return p.poolSize }

// HardwareCores returns the number of logical CPUs available to the
// process. A read-only environment query, independent of pool state.
func (p *ThreadPool) HardwareCores() int { return runtime.NumCPU() }

// Close sets the shutdown flag, wakes all workers, and joins them. Tasks
// still queued at that point are abandoned: they never execute, and their
// futures block forever in Wait/Get unless the holder rescues them —
// Future.Get claims and runs without the pool, so the rescue path
// survives Close. Idempotent and safe for concurrent use.
func (p *ThreadPool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.quit = true
		p.mu.Unlock()

		p.workAvail.Broadcast()
		p.workers.Wait()
	})
}
