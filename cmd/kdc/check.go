package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kdc/internal/diagfmt"
	"kdc/internal/driver"
	"kdc/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full pipeline through type analysis without generating IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	pretty := diagfmt.Pretty{Opts: diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), ShowPreview: true}}

	res, err := driver.CompileFile(os.Stderr, fs, args[0], pretty)
	if err != nil {
		return fmt.Errorf("error: %v", err)
	}
	if res.Aborted {
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", args[0])
	return nil
}
