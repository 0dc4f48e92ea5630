// Command doxec runs the executable examples embedded in
// documentation files.
package main

import (
	"os"

	"github.com/roach88/doxec/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
