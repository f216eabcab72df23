package blockon_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsabric/blockon"
)

func TestCurrentTaskMissing(t *testing.T) {
	_, ok := blockon.CurrentTask(context.Background())
	assert.False(t, ok)
}

func TestWithTaskDerivesChild(t *testing.T) {
	ctx, root := blockon.WithTask(context.Background(), "root")
	require.NotEmpty(t, root.ID)
	assert.Equal(t, "root", root.Label)
	assert.Empty(t, root.ParentID, "a task without an ancestor has no parent")

	ctx, child := blockon.WithTask(ctx, "child")
	assert.Equal(t, root.ID, child.ParentID)
	assert.NotEqual(t, root.ID, child.ID)

	cur, ok := blockon.CurrentTask(ctx)
	require.True(t, ok)
	assert.Equal(t, child, cur)
}

func TestLoggerFrom(t *testing.T) {
	assert.Same(t, slog.Default(), blockon.LoggerFrom(context.Background()))

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := blockon.WithLogger(context.Background(), log)
	assert.Same(t, log, blockon.LoggerFrom(ctx))
}
