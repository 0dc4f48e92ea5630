package ops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultShell interprets console commands when no shell is configured.
const DefaultShell = "/bin/sh"

// Options configure how console operations spawn shell commands.
type Options struct {
	// Shell is the interpreter invoked as `shell -c command`.
	// Empty means DefaultShell.
	Shell string

	// Timeout bounds each individual shell command. Zero means no
	// timeout: a hung command blocks the run indefinitely, matching
	// the historical behavior.
	Timeout time.Duration
}

// invocation captures one finished shell command.
type invocation struct {
	stdout   string
	stderr   string
	exitCode int
}

// stdoutLines splits the captured stdout into lines, removing the
// single trailing empty line produced by a final newline.
func (inv invocation) stdoutLines() []string {
	lines := strings.Split(inv.stdout, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// runShell executes one command in a fresh shell process and waits for
// it to exit, draining both streams into memory.
//
// A non-zero exit status is not an error here; it is reported through
// invocation.exitCode so callers can raise a ScriptFailure. A command
// killed by the configured timeout reports exit code -1. Failing to
// spawn the shell at all is an environment fault and returns an error.
func runShell(ctx context.Context, opts Options, command string) (invocation, error) {
	shell := opts.Shell
	if shell == "" {
		shell = DefaultShell
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	inv := invocation{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			inv.exitCode = exitErr.ExitCode()
		case ctx.Err() != nil:
			inv.exitCode = -1
		default:
			return inv, fmt.Errorf("spawn %s: %w", shell, err)
		}
	}
	return inv, nil
}
