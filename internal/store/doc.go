// Package store persists run history for executed documents.
//
// Every CLI run may record, per document, one row in the runs table
// and one row per attempted operation in the results table. The store
// is presentation-layer bookkeeping: the core scanner, registry and
// engine never touch it, and recording failures never change a run's
// outcome.
package store
