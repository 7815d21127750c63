// Package main implements the kdc command-line tool: the compiler
// driver for the front- and middle-end pipeline in internal/, plus the
// toy "-r" interpreter that stands in for the out-of-scope backend.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kdc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kdc [flags] <input-file>",
	Short: "kdc compiles and runs programs in the toy language",
	Long: `kdc lexes, parses, lowers, and type-checks a single source file,
then either writes its generated IR to out.bin or, with -r, evaluates
main() directly and exits with its return value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.Flags().BoolP("run", "r", false, "evaluate main() after compiling and exit with its return value")
	rootCmd.Flags().CountP("verbose", "v", "print the generated IR (-v); repeat as -vv for the post-backend dumps spec.md describes, which this pipeline doesn't produce a backend for")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted but has no effect on output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 20, "reserved for future multi-diagnostic reporting; the pipeline is fail-fast and stops at the first")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.Version = version.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
