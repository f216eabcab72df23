package blockon

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// SpawnBusy drives t to completion on the calling goroutine via
// [RunBusy], spinning (with a yield hint) through any not-before delay,
// and returns an already-completed [Observer].
func SpawnBusy[T any](ctx context.Context, t Task[T]) *Observer[T] {
	logSpawn(ctx, t.label)
	spinUntil(t.notBefore)
	o := newObserver[T]()
	o.complete(RunBusy(t.fut))
	return o
}

// SpawnParked drives t to completion on the calling goroutine via
// [RunParked], sleeping through any not-before delay, and returns an
// already-completed [Observer].
func SpawnParked[T any](ctx context.Context, t Task[T]) *Observer[T] {
	logSpawn(ctx, t.label)
	sleepUntil(t.notBefore)
	o := newObserver[T]()
	o.complete(RunParked(t.fut))
	return o
}

// SpawnThread starts t on a goroutine dedicated to its own OS thread and
// returns immediately. The new goroutine sleeps through any not-before
// delay, then drives t via [RunParked]; the returned [Observer] completes
// when it finishes. The spawned run inherits a child task context derived
// from ctx, as in [SpawnDetached].
func SpawnThread[T any](ctx context.Context, t Task[T]) *Observer[T] {
	ctx, task := WithTask(ctx, t.label)
	log := LoggerFrom(ctx).With("task", task)
	log.InfoContext(ctx, "spawned future")
	o := newObserver[T]()
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		sleepUntil(t.notBefore)
		o.complete(RunParked(t.fut))
		log.DebugContext(ctx, "future completed")
	}()
	return o
}

func logSpawn(ctx context.Context, label string) {
	LoggerFrom(ctx).InfoContext(ctx, "spawned future", "label", label)
}

func spinUntil(at time.Time) {
	for time.Now().Before(at) {
		runtime.Gosched()
	}
}

func sleepUntil(at time.Time) {
	if d := time.Until(at); d > 0 {
		time.Sleep(d)
	}
}

// A Runtime spawns type-erased tasks. It exists for executor-agnostic
// code that picks its execution strategy at run time; code that knows
// its strategy should call [SpawnBusy], [SpawnParked] or [SpawnThread]
// directly and keep its types.
type Runtime interface {
	Spawn(ctx context.Context, t Task[any]) *Observer[any]
}

// BusyRuntime is the [Runtime] over [SpawnBusy]. Spawn blocks the caller
// and burns CPU until the task completes; lowest latency, highest cost.
type BusyRuntime struct{}

// ParkedRuntime is the [Runtime] over [SpawnParked]. Spawn blocks the
// caller, parking between polls.
type ParkedRuntime struct{}

// ThreadRuntime is the [Runtime] over [SpawnThread]. Spawn returns
// immediately; each task gets its own OS thread.
type ThreadRuntime struct{}

func (BusyRuntime) Spawn(ctx context.Context, t Task[any]) *Observer[any] {
	return SpawnBusy(ctx, t)
}

func (ParkedRuntime) Spawn(ctx context.Context, t Task[any]) *Observer[any] {
	return SpawnParked(ctx, t)
}

func (ThreadRuntime) Spawn(ctx context.Context, t Task[any]) *Observer[any] {
	return SpawnThread(ctx, t)
}

var globalRuntime atomic.Value // of Runtime

// SetGlobalRuntime installs r as the process-wide default [Runtime]
// returned by [GlobalRuntime]. Safe for concurrent use.
func SetGlobalRuntime(r Runtime) {
	if r == nil {
		panic("blockon: SetGlobalRuntime(nil)")
	}
	globalRuntime.Store(&r)
}

// GlobalRuntime returns the runtime installed by [SetGlobalRuntime],
// defaulting to [ThreadRuntime] so that spawning through it never blocks
// the caller.
func GlobalRuntime() Runtime {
	if p, ok := globalRuntime.Load().(*Runtime); ok {
		return *p
	}
	return ThreadRuntime{}
}
