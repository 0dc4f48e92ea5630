package ops

import (
	"context"
	"strings"
)

// consoleOp runs every $-prefixed content line in its own fresh shell
// process, in document order. Non-$ lines are ignored. The argument is
// unused.
type consoleOp struct {
	base
	opts Options
}

// NewConsole returns the constructor for the console operation, with
// shell commands spawned according to opts.
func NewConsole(opts Options) Constructor {
	return func(argument string, content []string) Operation {
		return &consoleOp{
			base: base{command: "console", argument: argument, content: content},
			opts: opts,
		}
	}
}

// Execute runs the commands one at a time. Each command fully
// completes before the next is considered. A non-zero exit status
// returns a ScriptFailure and aborts the remaining commands of this
// operation.
func (op *consoleOp) Execute(ctx context.Context, log LogFunc) error {
	for _, line := range op.content {
		command, ok := cutCommand(line)
		if !ok {
			continue
		}
		log.emit("$ " + command)
		inv, err := runShell(ctx, op.opts, command)
		if err != nil {
			return err
		}
		log.emit(inv.stdoutLines()...)
		if inv.exitCode != 0 {
			return &ScriptFailure{
				Command:  command,
				ExitCode: inv.exitCode,
				Stdout:   inv.stdout,
				Stderr:   inv.stderr,
			}
		}
	}
	return nil
}

// consoleOutputOp runs $-prefixed commands and asserts that each
// command's captured stdout equals the lines documented after it.
type consoleOutputOp struct {
	base
	opts Options
}

// NewConsoleOutput returns the constructor for the console_output
// operation, with shell commands spawned according to opts.
func NewConsoleOutput(opts Options) Constructor {
	return func(argument string, content []string) Operation {
		return &consoleOutputOp{
			base: base{command: "console_output", argument: argument, content: content},
			opts: opts,
		}
	}
}

// outputGroup pairs one shell command with its documented stdout.
type outputGroup struct {
	command  string
	expected []string
}

// groupContent splits a console_output block into (command, expected
// lines) groups. A $-prefixed line starts a new group; following
// non-$ lines are that group's expected output. Lines before the
// first $ are discarded.
func groupContent(content []string) []outputGroup {
	var groups []outputGroup
	for _, line := range content {
		if command, ok := cutCommand(line); ok {
			groups = append(groups, outputGroup{command: command})
			continue
		}
		if len(groups) == 0 {
			continue
		}
		g := &groups[len(groups)-1]
		g.expected = append(g.expected, line)
	}
	return groups
}

// Execute runs each group independently in a fresh shell process.
// A non-zero exit returns a ScriptFailure; differing output returns an
// OutputMismatch. Either aborts the remaining groups. The log callback
// sees the echoed command and the actual output even when the group
// ends in a mismatch.
func (op *consoleOutputOp) Execute(ctx context.Context, log LogFunc) error {
	for _, group := range groupContent(op.content) {
		log.emit("$ " + group.command)
		inv, err := runShell(ctx, op.opts, group.command)
		if err != nil {
			return err
		}
		actual := inv.stdoutLines()
		log.emit(actual...)
		if inv.exitCode != 0 {
			return &ScriptFailure{
				Command:  group.command,
				ExitCode: inv.exitCode,
				Stdout:   inv.stdout,
				Stderr:   inv.stderr,
			}
		}
		if idx, equal := diffLines(group.expected, actual); !equal {
			return &OutputMismatch{
				Command:  group.command,
				Index:    idx,
				Expected: group.expected,
				Actual:   actual,
			}
		}
	}
	return nil
}

// cutCommand extracts the shell command from a $-prefixed content
// line, stripping the prefix and the whitespace around the command.
func cutCommand(line string) (string, bool) {
	rest, found := strings.CutPrefix(line, "$")
	if !found {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// diffLines compares two line sequences by ordered exact equality.
// It returns the first differing index and whether the sequences are
// equal. When one sequence is a prefix of the other, the index is the
// length of the shorter one.
func diffLines(expected, actual []string) (int, bool) {
	n := min(len(expected), len(actual))
	for i := 0; i < n; i++ {
		if expected[i] != actual[i] {
			return i, false
		}
	}
	if len(expected) != len(actual) {
		return n, false
	}
	return 0, true
}
