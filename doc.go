// Package blockon drives a single future to completion without a scheduler.
//
// A [Future] is a poll-driven computation: each call to its Poll method
// either produces the final value or reports that the value is not ready
// yet. Futures alone are inert. Something has to keep polling them, and
// that something is this package. It provides the smallest set of blocking
// executors that is still correct: a busy-poll loop, a parking loop built
// on a manual wake protocol, a detached per-thread runner on top of the
// parking loop, and a single-shot poll for inspection.
//
// # Choosing an Executor
//
// [RunBusy] polls in a tight loop with a yield hint between polls.
// It never parks the goroutine in a wait primitive, which makes it the
// lowest-latency option and the most expensive one. Use it for futures
// that resolve after a handful of polls.
//
// [RunParked] polls once, and if the future is not ready, parks the
// calling goroutine until the future wakes it through its [Waker].
// This is the executor to reach for by default.
//
// [SpawnDetached] moves the whole parking loop onto a goroutine wedded to
// its own OS thread and returns immediately. There is no handle to the
// result: detached means detached. The calling context travels along, so
// log records emitted by the spawned run remain attributable to the call
// path that started it. See [WithTask] and [CurrentTask].
//
// [PollOnce] and [PollOnceOwned] poll exactly once with a waker that
// discards wake calls. They never loop and never block, which makes them
// useful in tests and in code that wants to opportunistically check on a
// future without committing to drive it.
//
// # The Wake Protocol
//
// A pending future arranges for its [Waker] to be invoked when progress
// becomes possible. The waker is a reference-counted capability over a
// shared wake signal with four operations: Clone, Wake, WakeByRef and
// Release. The signal is a coalescing, level-triggered flag, not a
// counter. Any number of wake calls between two polls collapse into a
// single resumed poll, and a wake that lands before the executor parks is
// still observed by the park. The contract is "may be polled again soon",
// never "polled once per wake call".
//
// The waker passed to a Poll call is borrowed for the duration of that
// call. A future that wants to signal later, from a timer or another
// goroutine, must call Clone and hand the clone off. The clone's share of
// the signal is returned either by Wake, which signals and consumes it in
// one step, or by Release.
//
// # What This Package Is Not
//
// There is no task queue, no multiplexing of many futures onto one
// goroutine, no cancellation, no panic isolation and no pooling of the
// threads that [SpawnDetached] dedicates. A future that never resolves
// makes RunBusy and RunParked never return; that is the contract, and
// [Forever] exists precisely to exercise it. Callers needing timeouts
// must build them into the future itself.
package blockon
