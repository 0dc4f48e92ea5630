package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/doxec/internal/config"
	"github.com/roach88/doxec/internal/document"
	"github.com/roach88/doxec/internal/engine"
	"github.com/roach88/doxec/internal/ops"
	"github.com/roach88/doxec/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Shell      string
	Timeout    time.Duration
	History    string
	ConfigPath string
}

// NewRunCommand creates the run command: execute the operations in the
// given documents, in document order, and report failed/total counts.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] FILE...",
		Short: "Execute the operations in the given documents",
		Long: "run parses each document, extracts its magic-tag operations and\n" +
			"executes them in order. Failing examples are counted, not fatal;\n" +
			"the run halts only on environment faults such as unwritable paths.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocuments(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell used for console commands (default /bin/sh)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "per-command timeout, e.g. 30s (0 disables)")
	cmd.Flags().StringVar(&opts.History, "history", "", "record results into this SQLite database")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "configuration file")

	return cmd
}

// documentReport summarizes one executed document.
type documentReport struct {
	Path   string `json:"path"`
	Failed int    `json:"failed"`
	Total  int    `json:"total"`
}

// runReport is the aggregate run summary emitted in JSON mode.
type runReport struct {
	Documents []documentReport `json:"documents"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

func runDocuments(cmd *cobra.Command, rootOpts *RootOptions, opts *RunOptions, paths []string) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}
	shellOpts, err := cfg.ShellOptions()
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}

	// Flags override the config file.
	if opts.Shell != "" {
		shellOpts.Shell = opts.Shell
	}
	if cmd.Flags().Changed("timeout") {
		shellOpts.Timeout = opts.Timeout
	}
	history := cfg.History
	if opts.History != "" {
		history = opts.History
	}

	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	var st *store.Store
	if history != "" {
		st, err = store.Open(history)
		if err != nil {
			return WrapExitError(ExitCommandError, "open history database", err)
		}
		defer st.Close()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if rootOpts.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}

	// One registry serves all documents; it is read-only after this.
	registry := ops.Builtins(shellOpts)

	var report runReport
	for _, path := range paths {
		doc, err := document.Load(path, registry)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot load document", err)
		}
		res, err := runDocument(cmd.Context(), formatter, st, logger, doc)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run aborted in %s", path), err)
		}
		report.Documents = append(report.Documents, documentReport{
			Path:   path,
			Failed: res.Failed,
			Total:  res.Total,
		})
		report.Failed += res.Failed
		report.Total += res.Total
		formatter.Textf("%s: %d failed / %d total\n", path, res.Failed, res.Total)
	}

	if rootOpts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	}
	if report.Failed > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d operations failed", report.Failed, report.Total))
	}
	return nil
}

// runDocument executes one parsed document, streaming progress through
// the formatter and recording results when a history store is open.
// History recording is best-effort: a failed insert is logged but
// never changes the run's outcome.
func runDocument(ctx context.Context, formatter *OutputFormatter, st *store.Store,
	logger *slog.Logger, doc *document.Document) (engine.Result, error) {

	var record *store.RunRecord
	if st != nil {
		var err error
		record, err = st.BeginRun(ctx, doc.Path)
		if err != nil {
			return engine.Result{}, err
		}
	}

	var line int
	var op ops.Operation
	hooks := engine.Hooks{
		Before: func(l int, o ops.Operation) {
			line, op = l, o
			formatter.Textf("%s:%d %s\n", doc.Path, l, operationLabel(o))
		},
		Log: func(lines ...string) {
			for _, l := range lines {
				formatter.VerboseLog("    %s", l)
			}
		},
		After: func(err error) {
			status, detail := store.StatusPassed, ""
			if err != nil {
				status, detail = store.StatusFailed, err.Error()
				formatter.Textf("  FAILED: %v\n", err)
			}
			if record != nil {
				if rerr := record.RecordResult(ctx, line, op.Command(), op.Argument(), status, detail); rerr != nil {
					logger.Error("record result", "run", record.ID, "error", rerr)
				}
			}
		},
	}

	res, err := engine.New(hooks, engine.WithLogger(logger)).Run(ctx, doc.Entries)
	if record != nil {
		if ferr := record.Finish(ctx, res.Failed, res.Total); ferr != nil {
			logger.Error("finish run", "run", record.ID, "error", ferr)
		}
	}
	return res, err
}

// operationLabel renders "command" or "command argument" for progress
// lines.
func operationLabel(op ops.Operation) string {
	if op.Argument() == "" {
		return op.Command()
	}
	return op.Command() + " " + op.Argument()
}
