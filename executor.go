package blockon

import "runtime"

// RunBusy blocks the calling goroutine until f resolves, polling it in a
// busy loop, and returns the value.
//
// Every waker operation seen by f is a no-op, so f does not need to
// arrange any wakeup: it is simply polled again. Between polls the loop
// yields the processor briefly to reduce contention, but it never parks
// the goroutine in a wait primitive. A future that never resolves makes
// RunBusy never return.
func RunBusy[T any](f Future[T]) T {
	for {
		if v, ok := f.Poll(NopWaker); ok {
			return v
		}
		runtime.Gosched()
	}
}

// RunParked blocks the calling goroutine until f resolves and returns
// the value.
//
// RunParked creates a fresh wake signal for the call and polls f with a
// [Waker] referencing it. Whenever f reports not ready, the goroutine
// parks on the signal until some holder of the waker (or of one of its
// clones) wakes it, then polls again. Wakes coalesce: any number of wake
// calls between two polls resume exactly one poll, and a wake delivered
// before the park still unparks it.
//
// A future that never resolves and never wakes makes RunParked never
// return.
func RunParked[T any](f Future[T]) T {
	s := newWakeSignal()
	w := s.newWaker()
	defer w.Release()
	for {
		if v, ok := f.Poll(w); ok {
			return v
		}
		s.wait()
	}
}

// PollOnce polls f exactly once and reports the outcome: the value and
// true if f resolved, the zero value and false if it is still pending.
//
// The poll uses [NopWaker], so wake calls made by f during the poll are
// silently discarded; there is no signal for them to set. If the caller
// needs wake-driven re-polling it must use [RunParked] or [RunBusy]
// instead. PollOnce never loops and never blocks.
//
// The caller retains f and may poll it again later.
func PollOnce[T any](f Future[T]) (T, bool) {
	return f.Poll(NopWaker)
}

// PollOnceOwned is [PollOnce] for call sites handing off their future:
// it consumes f, which must not be polled again afterward, whatever the
// outcome of this one poll.
func PollOnceOwned[T any](f Future[T]) (T, bool) {
	return f.Poll(NopWaker)
}
