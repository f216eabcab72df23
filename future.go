package blockon

// A Future is an asynchronous computation producing a single value of
// type T.
//
// A Future does nothing on its own; it must be polled to make progress.
// Poll either resolves the future, returning its value and true, or
// returns the zero value and false to report that the value is not ready
// yet. In the latter case the future is responsible for arranging a call
// to the provided [Waker] once progress becomes possible, typically by
// cloning it and handing the clone to a timer, a callback or another
// goroutine.
//
// The waker passed to Poll is borrowed for the duration of the call; keep
// a share of it only via Clone. Poll must return quickly and must never
// block. Once a Future has resolved, it must not be polled again.
//
// Polls of one execution are strictly sequential. An executor never calls
// Poll from two goroutines at once, so a Future needs no internal locking
// against its own polls.
type Future[T any] interface {
	Poll(w Waker) (v T, ok bool)
}

// The FutureFunc type is an adapter to allow the use of ordinary
// functions as Futures. FutureFunc(f) is a [Future] whose Poll calls f.
type FutureFunc[T any] func(w Waker) (T, bool)

// Poll implements [Future] by calling f.
func (f FutureFunc[T]) Poll(w Waker) (T, bool) {
	return f(w)
}

// Ready returns a [Future] that resolves to v on its first poll.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func(Waker) (T, bool) {
		return v, true
	})
}

// Forever returns a [Future] that is always pending. It never resolves
// and never wakes anyone.
//
// Driving it with [RunBusy] or [RunParked] blocks forever. It is
// primarily useful for testing and for "todo"-style placeholders.
func Forever[T any]() Future[T] {
	return FutureFunc[T](func(Waker) (v T, ok bool) {
		return v, false
	})
}

// EraseFuture adapts a Future[T] to a Future[any] so that it can flow
// through the type-erased [Runtime] interface.
func EraseFuture[T any](f Future[T]) Future[any] {
	return FutureFunc[any](func(w Waker) (any, bool) {
		v, ok := f.Poll(w)
		if !ok {
			return nil, false
		}
		return v, true
	})
}
