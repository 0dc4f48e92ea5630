package ops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("this should be overwritten\n"), 0o644))

	op := NewWrite(path, []string{"Hello", "  World!"})
	require.NoError(t, op.Execute(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n  World!\n", string(data))
}

func TestWriteEmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	op := NewWrite(path, nil)
	require.NoError(t, op.Execute(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestAppendExecuteTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	first := NewAppend(path, []string{"Hello"})
	second := NewAppend(path, []string{" World", "!"})
	require.NoError(t, first.Execute(context.Background(), nil))
	require.NoError(t, second.Execute(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n World\n!\n", string(data))
}

func TestWriteUnwritablePathIsFatal(t *testing.T) {
	op := NewWrite(filepath.Join(t.TempDir(), "missing", "out.txt"), []string{"x"})

	err := op.Execute(context.Background(), nil)
	require.Error(t, err)
	// An I/O fault is an environment problem, never a counted test
	// failure.
	assert.False(t, IsRecoverable(err))
}
