// Package threadpool provides a fixed-size pool of worker goroutines that
// schedules arbitrary callables and returns futures for their eventual
// results.
//
// Constructors
//   - New(poolSize, opts ...Option): creates the pool and spawns poolSize
//     workers immediately. A poolSize of zero is permitted; such a pool
//     executes tasks only through rescue (see below) or Wait(WaitAsync)
//     draining.
//
// Submission
// Methods cannot carry type parameters, so submission is via package-level
// functions: Async (plain result), AsyncErr (fallible), Async1/Async2
// (pre-bound arguments), AsyncVoid (side effects only). The member-call
// form of submission is a method expression: Async1(p, (*T).Method, obj).
//
// Rescue
// Every submitted task carries an atomic claim gate. A worker dequeuing
// the task and a consumer blocked in Future.Get race for the claim; the
// winner executes the task exactly once, the loser waits for completion.
// Consumers therefore make progress even when every worker is itself
// blocked on a future: they run the queued task on their own goroutine.
// This is what keeps recursive submission deadlock-free with any pool
// size.
//
// Defaults
// Unless overridden, a newly created pool uses:
//   - QueueCapacity: 16 (initial backing capacity; the queue grows)
//   - Metrics: noop provider
//
// Shutdown
// Close sets the shutdown flag, wakes all workers, and joins them. Tasks
// still queued at that point are abandoned: they never execute, and their
// futures block forever in Wait/Get unless the holder rescues them —
// claiming does not require the pool to be alive, so Future.Get keeps
// working after Close. Submitting after Close returns ErrPoolClosed.
package threadpool
