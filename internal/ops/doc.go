// Package ops defines the executable operations behind magic tags.
//
// Each well-formed tag-plus-block pair in a document becomes one
// Operation. The Registry maps command keywords to constructors; the
// four built-ins are:
//
//	write          overwrite a file with the block's content
//	append         append the block's content to a file
//	console        run each $-prefixed content line in a fresh shell
//	console_output like console, but assert the captured stdout
//
// An operation's Execute returns nil on success, a *ScriptFailure or
// *OutputMismatch when the documented example is wrong (recoverable,
// counted by the engine), or any other error for environment faults
// (fatal, aborts the run). Operations are immutable once constructed
// and never retried.
package ops
