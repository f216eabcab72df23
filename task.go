package blockon

import "time"

// A Task pairs a [Future] with the metadata the runtime adapters act on:
// a human-readable label for log attribution and an optional not-before
// time. A Task is a value; methods that adjust it return a copy.
type Task[T any] struct {
	label     string
	notBefore time.Time
	fut       Future[T]
}

// NewTask creates a Task running f, labeled for logging.
func NewTask[T any](label string, f Future[T]) Task[T] {
	return Task[T]{label: label, fut: f}
}

// After returns a copy of t that no runtime will poll before at.
// How the delay is spent (spinning, sleeping, sleeping off-thread)
// depends on the runtime the task is given to.
func (t Task[T]) After(at time.Time) Task[T] {
	t.notBefore = at
	return t
}

// Label returns the task's label.
func (t Task[T]) Label() string {
	return t.label
}

// NotBefore returns the earliest time the task may be polled.
// The zero time means the task is due immediately.
func (t Task[T]) NotBefore() time.Time {
	return t.notBefore
}

// EraseTask adapts a Task[T] to a Task[any] for use with the
// type-erased [Runtime] interface.
func EraseTask[T any](t Task[T]) Task[any] {
	return Task[any]{
		label:     t.label,
		notBefore: t.notBefore,
		fut:       EraseFuture(t.fut),
	}
}

// An Observer is a completion handle returned by the runtime adapters.
// It observes the task's result; it cannot cancel or otherwise influence
// the run.
type Observer[T any] struct {
	done chan struct{}
	v    T
}

func newObserver[T any]() *Observer[T] {
	return &Observer[T]{done: make(chan struct{})}
}

// complete must be called exactly once.
func (o *Observer[T]) complete(v T) {
	o.v = v
	close(o.done)
}

// Done returns a channel that is closed once the task has completed.
func (o *Observer[T]) Done() <-chan struct{} {
	return o.done
}

// Value blocks until the task has completed, then returns its value.
func (o *Observer[T]) Value() T {
	<-o.done
	return o.v
}

// TryValue returns the task's value if it has already completed,
// without blocking.
func (o *Observer[T]) TryValue() (v T, ok bool) {
	select {
	case <-o.done:
		return o.v, true
	default:
		return v, false
	}
}
