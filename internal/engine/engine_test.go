package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/doxec/internal/ops"
)

// scriptedOp returns a canned error from Execute and records that it ran.
type scriptedOp struct {
	command string
	err     error
	ran     bool
}

func (op *scriptedOp) Command() string   { return op.command }
func (op *scriptedOp) Argument() string  { return "" }
func (op *scriptedOp) Content() []string { return nil }

func (op *scriptedOp) Execute(ctx context.Context, log ops.LogFunc) error {
	op.ran = true
	return op.err
}

func TestRunAllPass(t *testing.T) {
	entries := []Entry{
		{Line: 3, Op: &scriptedOp{command: "write"}},
		{Line: 9, Op: &scriptedOp{command: "console"}},
	}

	res, err := New(Hooks{}).Run(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 0, Total: 2}, res)
}

func TestRunCountsRecoverableFailuresAndContinues(t *testing.T) {
	last := &scriptedOp{command: "console"}
	entries := []Entry{
		{Line: 1, Op: &scriptedOp{command: "console", err: &ops.ScriptFailure{Command: "false", ExitCode: 1}}},
		{Line: 5, Op: &scriptedOp{command: "console_output", err: &ops.OutputMismatch{Command: "echo"}}},
		{Line: 9, Op: last},
	}

	res, err := New(Hooks{}).Run(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 2, Total: 3}, res)
	assert.True(t, last.ran)
}

func TestRunFatalErrorPropagates(t *testing.T) {
	fatal := errors.New("open /etc/hosts: permission denied")
	last := &scriptedOp{command: "console"}
	entries := []Entry{
		{Line: 1, Op: &scriptedOp{command: "write"}},
		{Line: 4, Op: &scriptedOp{command: "write", err: fatal}},
		{Line: 8, Op: last},
	}

	res, err := New(Hooks{}).Run(context.Background(), entries)
	require.ErrorIs(t, err, fatal)
	// The faulting entry was attempted but not counted as a failure.
	assert.Equal(t, Result{Failed: 0, Total: 2}, res)
	assert.False(t, last.ran)
}

func TestRunHookOrdering(t *testing.T) {
	var events []string
	hooks := Hooks{
		Before: func(line int, op ops.Operation) {
			events = append(events, "before")
			assert.Equal(t, 2, line)
			assert.Equal(t, "console", op.Command())
		},
		After: func(err error) {
			if err == nil {
				events = append(events, "after:ok")
			} else {
				events = append(events, "after:fail")
			}
		},
	}

	entries := []Entry{
		{Line: 2, Op: &scriptedOp{command: "console"}},
	}
	_, err := New(hooks).Run(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"before", "after:ok"}, events)
}

func TestRunAfterHookReceivesFailure(t *testing.T) {
	var got error
	hooks := Hooks{After: func(err error) { got = err }}

	entries := []Entry{
		{Line: 1, Op: &scriptedOp{command: "console", err: &ops.ScriptFailure{Command: "false", ExitCode: 1}}},
	}
	res, err := New(hooks).Run(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.True(t, ops.IsScriptFailure(got))
}

func TestRunAfterHookSkippedOnFatal(t *testing.T) {
	afterCalls := 0
	hooks := Hooks{After: func(err error) { afterCalls++ }}

	entries := []Entry{
		{Line: 1, Op: &scriptedOp{command: "write"}},
		{Line: 2, Op: &scriptedOp{command: "write", err: errors.New("disk full")}},
	}
	_, err := New(hooks).Run(context.Background(), entries)
	require.Error(t, err)
	assert.Equal(t, 1, afterCalls)
}

func TestRunEmptyEntries(t *testing.T) {
	res, err := New(Hooks{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}
