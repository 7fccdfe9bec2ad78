package threadpool

import "errors"

const Namespace = "threadpool"

var (
	ErrPoolClosed     = errors.New(Namespace + ": task submitted to a closed pool")
	ErrTaskPanicked   = errors.New(Namespace + ": task execution panicked")
	ErrFutureConsumed = errors.New(Namespace + ": future result already consumed")
	ErrInvalidConfig  = errors.New(Namespace + ": invalid configuration")
)
