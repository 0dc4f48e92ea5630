package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result statuses recorded per operation.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// RunRecord is an in-progress run being recorded.
type RunRecord struct {
	ID    string
	store *Store
	seq   int
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID        string
	Document  string
	StartedAt string
	Failed    int
	Total     int
}

// ResultRow is one recorded operation outcome.
type ResultRow struct {
	Seq      int
	Line     int
	Command  string
	Argument string
	Status   string
	Detail   string
}

// BeginRun inserts a new run row for the given document and returns a
// record for appending per-operation results.
//
// Run IDs are UUIDv7, so listing by ID also sorts by creation time.
func (s *Store) BeginRun(ctx context.Context, document string) (*RunRecord, error) {
	id := uuid.Must(uuid.NewV7()).String()
	startedAt := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, document, started_at) VALUES (?, ?, ?)
	`, id, document, startedAt)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &RunRecord{ID: id, store: s}, nil
}

// RecordResult appends one operation outcome to the run. Results are
// sequenced in call order.
func (r *RunRecord) RecordResult(ctx context.Context, line int, command, argument, status, detail string) error {
	r.seq++
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO results (run_id, seq, line, command, argument, status, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.seq, line, command, argument, status, detail)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Finish stamps the run with its final counters.
func (r *RunRecord) Finish(ctx context.Context, failed, total int) error {
	_, err := r.store.db.ExecContext(ctx, `
		UPDATE runs SET failed = ?, total = ? WHERE id = ?
	`, failed, total, r.ID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Runs lists all recorded runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document, started_at, failed, total FROM runs ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Document, &r.StartedAt, &r.Failed, &r.Total); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Results returns one run's operation outcomes in recorded order.
func (s *Store) Results(ctx context.Context, runID string) ([]ResultRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, line, command, argument, status, detail
		FROM results WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var r ResultRow
		if err := rows.Scan(&r.Seq, &r.Line, &r.Command, &r.Argument, &r.Status, &r.Detail); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}
