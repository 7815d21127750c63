package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kdc/internal/diagfmt"
	"kdc/internal/driver"
	"kdc/internal/ir"
	"kdc/internal/source"
)

const irBanner = "============\nGENERATED IR\n============"

// runCompile implements spec.md §6's primary CLI contract: one input
// file, -r to evaluate main() instead of writing out.bin, -v/-vv to
// print the generated IR before doing either. spec.md's -vv also prints
// the IR after copy insertion and after register allocation; this
// pipeline has no backend to produce those stages from (spec.md §1 puts
// codegen out of scope), so -vv is accepted but prints the same single
// dump -v does.
func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("error: no input file specified")
	}
	path := args[0]

	run, err := cmd.Flags().GetBool("run")
	if err != nil {
		return err
	}
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return err
	}

	pretty := diagfmt.Pretty{Opts: diagfmt.PrettyOpts{
		Color:       colorEnabled(cmd, os.Stderr),
		ShowPreview: true,
	}}

	fs := source.NewFileSet()
	res, err := driver.CompileFile(os.Stderr, fs, path, pretty)
	if err != nil {
		return fmt.Errorf("error: %v", err)
	}
	if res.Aborted || res.Unit == nil {
		os.Exit(1)
	}

	if verbosity >= 1 {
		fmt.Fprintln(cmd.OutOrStdout(), irBanner)
		ir.Fprint(cmd.OutOrStdout(), res.Unit, res.Interner)
	}

	if run {
		result, evalErr := ir.NewEval(res.Unit, res.Interner).Run()
		if evalErr != nil {
			return fmt.Errorf("error: %v", evalErr)
		}
		os.Exit(int(result & 0xff))
	}

	return writeOutBin(res)
}

// writeOutBin writes the compiled unit to out.bin. The real downstream
// format is machine code from a backend this pipeline doesn't implement
// (spec.md §1); out.bin instead carries the msgpack-encoded IR, the
// only artifact this pipeline actually produces for a non "-r" run.
func writeOutBin(res driver.Result) error {
	return driver.WriteUnit("out.bin", res.Unit)
}
