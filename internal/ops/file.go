package ops

import (
	"context"
	"fmt"
	"os"
)

// fileOp implements write and append. The two differ only in the flag
// used to open the target file.
type fileOp struct {
	base
	flag int
}

// NewWrite constructs the write operation: overwrite the file named by
// the argument with the content lines, each followed by a newline.
func NewWrite(argument string, content []string) Operation {
	return &fileOp{
		base: base{command: "write", argument: argument, content: content},
		flag: os.O_TRUNC,
	}
}

// NewAppend constructs the append operation: like write, but the file
// is opened in append mode.
func NewAppend(argument string, content []string) Operation {
	return &fileOp{
		base: base{command: "append", argument: argument, content: content},
		flag: os.O_APPEND,
	}
}

// Execute writes the content lines to the target path. I/O faults are
// returned as-is: they indicate an environment problem, not a
// documentation defect, and abort the whole run.
func (op *fileOp) Execute(ctx context.Context, log LogFunc) error {
	f, err := os.OpenFile(op.argument, os.O_WRONLY|os.O_CREATE|op.flag, 0o644)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op.command, op.argument, err)
	}
	for _, line := range op.content {
		if _, err := f.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("%s %s: %w", op.command, op.argument, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s %s: %w", op.command, op.argument, err)
	}
	return nil
}
