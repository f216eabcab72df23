package blockon

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// TaskInfo identifies one detached run within a causal chain. It carries
// the task's label, its own ID and the ID of the task (if any) that
// spawned it, so that diagnostics emitted on the new goroutine remain
// attributable to the originating call path.
type TaskInfo struct {
	ID       string
	ParentID string
	Label    string
}

// LogValue implements [slog.LogValuer], grouping the task's fields under
// one attribute.
func (t TaskInfo) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("id", t.ID),
		slog.String("label", t.Label),
	}
	if t.ParentID != "" {
		attrs = append(attrs, slog.String("parent_id", t.ParentID))
	}
	return slog.GroupValue(attrs...)
}

type taskInfoKey struct{}

// CurrentTask returns the [TaskInfo] carried by ctx, if any.
func CurrentTask(ctx context.Context) (TaskInfo, bool) {
	if ctx == nil {
		return TaskInfo{}, false
	}
	t, ok := ctx.Value(taskInfoKey{}).(TaskInfo)
	return t, ok
}

// WithTask derives a child task context from ctx. The child is tagged
// with label, gets a fresh ID, and records the ID of ctx's task as its
// parent. [SpawnDetached] calls WithTask before starting the new
// goroutine; calling it directly is only needed when building custom
// spawn paths.
func WithTask(ctx context.Context, label string) (context.Context, TaskInfo) {
	child := TaskInfo{
		ID:    uuid.NewString(),
		Label: label,
	}
	if parent, ok := CurrentTask(ctx); ok {
		child.ParentID = parent.ID
	}
	return context.WithValue(ctx, taskInfoKey{}, child), child
}

type loggerKey struct{}

// WithLogger attaches a [slog.Logger] to ctx. Spawn paths log through
// the attached logger, so records produced on the spawned goroutine end
// up wherever the caller's logger points.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// LoggerFrom extracts the [slog.Logger] from ctx, falling back to
// [slog.Default] when none is attached.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
