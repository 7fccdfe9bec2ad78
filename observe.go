package threadpool

import "github.com/ygrebnov/threadpool/metrics"

// instruments bundles the pool's metric instruments, created once at
// construction and shared by every task the pool creates.
type instruments struct {
	submitted metrics.Counter
	completed metrics.Counter
	rescued   metrics.Counter
	panicked  metrics.Counter
	inflight  metrics.UpDownCounter
	runTime   metrics.Histogram
}

func newInstruments(p metrics.Provider) *instruments {
	return &instruments{
		submitted: p.Counter("tasks_submitted",
			metrics.WithDescription("tasks accepted for execution"), metrics.WithUnit("1")),
		completed: p.Counter("tasks_completed",
			metrics.WithDescription("tasks that finished executing"), metrics.WithUnit("1")),
		rescued: p.Counter("tasks_rescued",
			metrics.WithDescription("tasks executed by a waiting consumer instead of a worker"),
			metrics.WithUnit("1")),
		panicked: p.Counter("tasks_panicked",
			metrics.WithDescription("tasks whose callable panicked"), metrics.WithUnit("1")),
		inflight: p.UpDownCounter("tasks_inflight",
			metrics.WithDescription("tasks dequeued by the pool and not yet finished"),
			metrics.WithUnit("1")),
		runTime: p.Histogram("task_run_seconds",
			metrics.WithDescription("task execution duration"), metrics.WithUnit("seconds")),
	}
}
