package ops

import (
	"errors"
	"fmt"
	"strings"
)

// ScriptFailure reports a shell command that exited with a non-zero
// status. It carries both captured streams for diagnostics.
type ScriptFailure struct {
	// Command is the shell command that failed.
	Command string

	// ExitCode is the command's exit status. -1 when the process was
	// killed, including by the configured timeout.
	ExitCode int

	// Stdout and Stderr hold the fully drained streams.
	Stdout string
	Stderr string
}

// Error implements the error interface.
func (e *ScriptFailure) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	}
	return msg
}

// OutputMismatch reports captured stdout that differs from the lines
// documented in a console_output block.
type OutputMismatch struct {
	// Command is the shell command whose output was compared.
	Command string

	// Index is the first differing line index. When one sequence is a
	// prefix of the other, Index is the length of the shorter one.
	Index int

	// Expected and Actual are the full documented and captured line
	// sequences.
	Expected []string
	Actual   []string
}

// Error implements the error interface.
func (e *OutputMismatch) Error() string {
	return fmt.Sprintf("output of %q differs at line %d: expected %s, got %s",
		e.Command, e.Index+1, lineAt(e.Expected, e.Index), lineAt(e.Actual, e.Index))
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return fmt.Sprintf("%q", lines[i])
	}
	return "nothing"
}

// IsScriptFailure reports whether err is a ScriptFailure.
// Uses errors.As to handle wrapped errors.
func IsScriptFailure(err error) bool {
	var sf *ScriptFailure
	return errors.As(err, &sf)
}

// IsOutputMismatch reports whether err is an OutputMismatch.
// Uses errors.As to handle wrapped errors.
func IsOutputMismatch(err error) bool {
	var om *OutputMismatch
	return errors.As(err, &om)
}

// IsRecoverable reports whether err is a per-operation test failure
// (a documentation defect) rather than a fatal fault. Only recoverable
// errors are counted by the engine; everything else aborts the run.
func IsRecoverable(err error) bool {
	return IsScriptFailure(err) || IsOutputMismatch(err)
}
