package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/doxec/internal/document"
	"github.com/roach88/doxec/internal/ops"
)

// listedOperation is one parsed operation as shown by the list command.
type listedOperation struct {
	Document     string `json:"document"`
	Line         int    `json:"line"`
	Command      string `json:"command"`
	Argument     string `json:"argument,omitempty"`
	ContentLines int    `json:"content_lines"`
}

// NewListCommand creates the list command: parse documents and print
// the operations that a run would execute, without executing anything.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE...",
		Short: "Parse documents and list the operations found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDocuments(cmd, rootOpts, args)
		},
	}
}

func listDocuments(cmd *cobra.Command, rootOpts *RootOptions, paths []string) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}
	registry := ops.Builtins(ops.Options{})

	var listed []listedOperation
	for _, path := range paths {
		doc, err := document.Load(path, registry)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot load document", err)
		}
		for _, entry := range doc.Entries {
			listed = append(listed, listedOperation{
				Document:     path,
				Line:         entry.Line,
				Command:      entry.Op.Command(),
				Argument:     entry.Op.Argument(),
				ContentLines: len(entry.Op.Content()),
			})
			formatter.Textf("%s:%d %s (%d content lines)\n",
				path, entry.Line, operationLabel(entry.Op), len(entry.Op.Content()))
		}
	}

	if rootOpts.Format == "json" {
		return formatter.Success(listed)
	}
	return nil
}
