package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/roach88/doxec/internal/ops"
)

// Entry pairs an operation with the 1-based document line of its tag.
type Entry struct {
	Line int
	Op   ops.Operation
}

// Hooks are optional reporting callbacks invoked around each entry.
// The presentation layer owns all formatting; the engine only calls.
type Hooks struct {
	// Before is invoked ahead of each operation with its tag line
	// number and the operation itself.
	Before func(line int, op ops.Operation)

	// After is invoked once the operation finished: with nil on
	// success, with the recoverable failure otherwise. It is not
	// invoked when the operation faults fatally.
	After func(err error)

	// Log receives the echoed commands and captured output produced
	// while an operation executes.
	Log ops.LogFunc
}

// Result aggregates one run. Both counters are monotonically
// non-decreasing and count entries actually attempted.
type Result struct {
	Failed int
	Total  int
}

// Engine drives sequential execution of an ordered operation list.
type Engine struct {
	hooks  Hooks
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an engine with the given reporting hooks.
func New(hooks Hooks, options ...Option) *Engine {
	e := &Engine{
		hooks:  hooks,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Run executes the entries in order and returns the failed and total
// counts.
//
// A recoverable failure (ScriptFailure or OutputMismatch) is counted
// and the run continues; it never aborts the run. Any other error
// propagates immediately with the counts accumulated so far.
func (e *Engine) Run(ctx context.Context, entries []Entry) (Result, error) {
	var res Result
	for _, entry := range entries {
		if e.hooks.Before != nil {
			e.hooks.Before(entry.Line, entry.Op)
		}
		res.Total++

		err := entry.Op.Execute(ctx, e.hooks.Log)
		if err != nil && !ops.IsRecoverable(err) {
			e.logger.Error("operation faulted",
				"line", entry.Line,
				"command", entry.Op.Command(),
				"error", err,
			)
			return res, err
		}
		if err != nil {
			res.Failed++
			e.logger.Info("operation failed",
				"line", entry.Line,
				"command", entry.Op.Command(),
				"error", err,
			)
		}
		if e.hooks.After != nil {
			e.hooks.After(err)
		}
	}
	return res, nil
}
