package blockon

import "sync/atomic"

// A wakeSignal is one coalescing, binary wake flag shared between the
// goroutine blocked in [RunParked] and every outstanding [Waker] clone
// derived from it.
//
// The flag is a single-permit, level-triggered semaphore: a buffered
// channel of capacity one. set delivers the permit if none is pending and
// is a no-op otherwise, so any number of sets between two waits coalesce
// into a single wakeup. A set that happens strictly before the wait
// leaves the permit in the channel, and the wait returns immediately.
// There is no window in which a wake can be missed.
//
// Shares are counted dynamically because a future may clone its waker an
// unbounded number of times before resolving. The count starts at one for
// the blocking caller; it reaches zero only after that caller and every
// clone have been spent, at which point the signal retires.
type wakeSignal struct {
	permit chan struct{}
	shares atomic.Int64
}

func newWakeSignal() *wakeSignal {
	s := &wakeSignal{permit: make(chan struct{}, 1)}
	s.shares.Store(1)
	return s
}

// set makes the signal observable as "pending wake". Safe to call from
// any goroutine, any number of times.
func (s *wakeSignal) set() {
	select {
	case s.permit <- struct{}{}:
	default:
	}
}

// wait blocks until the signal is set, consuming the pending wake.
// It returns immediately if the signal was set before wait began.
func (s *wakeSignal) wait() {
	<-s.permit
}

func (s *wakeSignal) acquire() {
	for {
		n := s.shares.Load()
		if n <= 0 {
			panic("blockon: Clone of a retired waker")
		}
		if s.shares.CompareAndSwap(n, n+1) {
			return
		}
	}
}

func (s *wakeSignal) release() {
	if s.shares.Add(-1) < 0 {
		panic("blockon: Release of a retired waker")
	}
}

// signalWaker is the [Waker] over a wakeSignal. Handles are cheap; all
// clones of one waker point at the same signal and differ only in the
// share they account for.
type signalWaker struct {
	s *wakeSignal
}

// newWaker returns the blocking caller's own handle, carrying the share
// the signal was created with.
func (s *wakeSignal) newWaker() Waker {
	return signalWaker{s: s}
}

func (w signalWaker) Clone() Waker {
	w.s.acquire()
	return signalWaker{s: w.s}
}

func (w signalWaker) Wake() {
	w.s.set()
	w.s.release()
}

func (w signalWaker) WakeByRef() {
	w.s.set()
}

func (w signalWaker) Release() {
	w.s.release()
}
