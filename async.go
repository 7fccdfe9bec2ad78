package threadpool

import "fmt"

// Void is the result type of futures that deliver completion only.
type Void = struct{}

// Async schedules fn on the pool and returns a Future for its result.
// Submission fails with ErrPoolClosed after Close.
func Async[R any](p *ThreadPool, fn func() R) (*Future[R], error) {
	return submit(p, func() (R, error) { return fn(), nil })
}

// AsyncErr schedules a fallible fn; the returned error surfaces from
// Future.Get.
func AsyncErr[R any](p *ThreadPool, fn func() (R, error)) (*Future[R], error) {
	return submit(p, fn)
}

// Async1 schedules fn bound with one argument. A method expression makes
// this the member-call form:
//
//	Async1(p, (*Counter).Increment, c)
func Async1[A, R any](p *ThreadPool, fn func(A) R, arg A) (*Future[R], error) {
	return submit(p, func() (R, error) { return fn(arg), nil })
}

// Async2 schedules fn bound with two arguments.
func Async2[A, B, R any](p *ThreadPool, fn func(A, B) R, a A, b B) (*Future[R], error) {
	return submit(p, func() (R, error) { return fn(a, b), nil })
}

// AsyncVoid schedules fn for its side effects; the Future delivers
// completion and any captured panic, no value.
func AsyncVoid(p *ThreadPool, fn func()) (*Future[Void], error) {
	return submit(p, func() (Void, error) { fn(); return Void{}, nil })
}

// submit wraps call into a task, enqueues it, and returns the future
// sharing that task. The thunk records the outcome into the shared slot
// and never lets a panic escape into whichever goroutine runs it.
func submit[R any](p *ThreadPool, call func() (R, error)) (*Future[R], error) {
	out := &outcome[R]{}
	obs := p.obs
	thunk := func() {
		defer func() {
			if r := recover(); r != nil {
				out.err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
				if obs != nil {
					obs.panicked.Add(1)
				}
			}
		}()
		out.value, out.err = call()
	}

	t := newTask(thunk, obs)
	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return &Future[R]{t: t, out: out}, nil
}
