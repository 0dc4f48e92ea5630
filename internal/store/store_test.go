package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Reopening an existing database is idempotent.
	st, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, st.Close())
}

func TestRunRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	run, err := st.BeginRun(ctx, "README.md")
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	require.NoError(t, run.RecordResult(ctx, 5, "write", "out.txt", StatusPassed, ""))
	require.NoError(t, run.RecordResult(ctx, 13, "console_output", "", StatusFailed,
		`output of "echo 123" differs at line 1: expected "1234", got "123"`))
	require.NoError(t, run.Finish(ctx, 1, 2))

	runs, err := st.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "README.md", runs[0].Document)
	assert.Equal(t, 1, runs[0].Failed)
	assert.Equal(t, 2, runs[0].Total)

	results, err := st.Results(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Seq)
	assert.Equal(t, 5, results[0].Line)
	assert.Equal(t, "write", results[0].Command)
	assert.Equal(t, StatusPassed, results[0].Status)
	assert.Equal(t, 2, results[1].Seq)
	assert.Equal(t, StatusFailed, results[1].Status)
	assert.Contains(t, results[1].Detail, "differs at line 1")
}

func TestRunsOrderedByID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first, err := st.BeginRun(ctx, "a.md")
	require.NoError(t, err)
	second, err := st.BeginRun(ctx, "b.md")
	require.NoError(t, err)

	runs, err := st.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// UUIDv7 IDs sort by creation time.
	assert.Equal(t, first.ID, runs[0].ID)
	assert.Equal(t, second.ID, runs[1].ID)
}

func TestResultsUnknownRun(t *testing.T) {
	st := openTestStore(t)
	results, err := st.Results(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, results)
}
