package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/doxec/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	DB string
}

// runRow is one recorded run as shown by the history command.
type runRow struct {
	ID        string `json:"id"`
	Document  string `json:"document"`
	StartedAt string `json:"started_at"`
	Failed    int    `json:"failed"`
	Total     int    `json:"total"`
}

// resultRow is one recorded operation outcome.
type resultRow struct {
	Seq      int    `json:"seq"`
	Line     int    `json:"line"`
	Command  string `json:"command"`
	Argument string `json:"argument,omitempty"`
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
}

// NewHistoryCommand creates the history command: list recorded runs,
// or show one run's per-operation results.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history [flags] [RUN_ID]",
		Short: "Show recorded runs from a history database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "history database path (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func showHistory(cmd *cobra.Command, rootOpts *RootOptions, opts *HistoryOptions, args []string) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if len(args) == 1 {
		results, err := st.Results(ctx, args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "read history", err)
		}
		rows := make([]resultRow, 0, len(results))
		for _, r := range results {
			rows = append(rows, resultRow{
				Seq:      r.Seq,
				Line:     r.Line,
				Command:  r.Command,
				Argument: r.Argument,
				Status:   r.Status,
				Detail:   r.Detail,
			})
			formatter.Textf("%3d line %-4d %-30s %s\n", r.Seq, r.Line, r.Command+" "+r.Argument, r.Status)
		}
		if rootOpts.Format == "json" {
			return formatter.Success(rows)
		}
		return nil
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "read history", err)
	}
	rows := make([]runRow, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, runRow{
			ID:        r.ID,
			Document:  r.Document,
			StartedAt: r.StartedAt,
			Failed:    r.Failed,
			Total:     r.Total,
		})
		formatter.Textf("%s  %s  %s  %d failed / %d total\n",
			r.ID, r.StartedAt, r.Document, r.Failed, r.Total)
	}
	if rootOpts.Format == "json" {
		return formatter.Success(rows)
	}
	return nil
}
