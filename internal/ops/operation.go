package ops

import "context"

// LogFunc receives presentation output produced while an operation
// executes: the echoed command line first, then the captured stdout
// split into lines. A nil LogFunc discards everything.
type LogFunc func(lines ...string)

// emit forwards to the callback, tolerating nil.
func (f LogFunc) emit(lines ...string) {
	if f != nil {
		f(lines...)
	}
}

// Operation is one executable unit derived from a single
// tag-plus-block pair.
type Operation interface {
	// Command is the tag's command keyword.
	Command() string

	// Argument is the tag's argument, empty when absent.
	Argument() string

	// Content holds the fenced block's lines in authored order,
	// fences stripped.
	Content() []string

	// Execute performs the operation. The context bounds any
	// subprocess the operation spawns.
	Execute(ctx context.Context, log LogFunc) error
}

// base carries the parsed triple shared by the built-in operations.
type base struct {
	command  string
	argument string
	content  []string
}

func (b base) Command() string   { return b.command }
func (b base) Argument() string  { return b.argument }
func (b base) Content() []string { return b.content }
