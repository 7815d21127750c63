package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kdc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print kdc's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kdc %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
