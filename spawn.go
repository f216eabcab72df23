package blockon

import (
	"context"
	"runtime"
)

// SpawnDetached runs f to completion on a goroutine dedicated to its own
// OS thread and returns immediately. There is no handle to observe or
// cancel the run; side effects of f are the only way to learn about it.
//
// Before starting the goroutine, SpawnDetached derives a child task
// context from ctx tagged with name (see [WithTask]) and passes it into
// the goroutine, so log records emitted there carry the task's identity
// and its spawning chain. The value produced by f is discarded.
//
// f must not share unsynchronized state with the caller: it is moved
// across a goroutine boundary and polled there. There is no pooling and
// no limit on concurrently spawned runs; bounding thread growth is the
// caller's responsibility.
func SpawnDetached[T any](ctx context.Context, name string, f Future[T]) {
	ctx, task := WithTask(ctx, name)
	log := LoggerFrom(ctx).With("task", task)
	log.InfoContext(ctx, "spawned future")
	go func() {
		// One OS thread per run, for the task's whole duration.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		RunParked(f)
		log.DebugContext(ctx, "future completed")
	}()
}
