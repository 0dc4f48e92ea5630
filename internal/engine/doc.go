// Package engine executes the ordered operation list parsed from a
// document.
//
// Execution is strictly single-threaded and sequential: operations run
// one at a time in document order, because file and process side
// effects are ordering-dependent (a later console step may depend on a
// file written earlier). The engine never parallelizes entries of the
// same document.
//
// FAILURE POLICY:
//
// Only ScriptFailure and OutputMismatch count as "this operation
// failed". They are recorded and the run continues with the next
// entry. Every other error is fatal: it indicates an environment
// problem or a programming error and propagates out of Run
// immediately.
package engine
