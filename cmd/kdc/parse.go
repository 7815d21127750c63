package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kdc/internal/ast"
	"kdc/internal/diag"
	"kdc/internal/diagfmt"
	"kdc/internal/lexer"
	"kdc/internal/parser"
	"kdc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its declared functions",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", args[0], err)
	}
	file := fs.Get(fileID)

	pretty := diagfmt.Pretty{Opts: diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), ShowPreview: true}}
	em := diag.NewEmitter(os.Stderr, fs, pretty)
	lx := lexer.New(file, source.NewInterner(), lexer.Options{Reporter: diag.StageReport{Emitter: em, Fallback: diag.LexInvalidChar}})

	root, err := parser.New(lx, diag.StageReport{Emitter: em, Fallback: diag.SynUnexpectedToken}).Parse()
	if err != nil || em.Aborted {
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	for _, fn := range root.Functions {
		fmt.Fprintf(out, "fn %s(", fn.Name)
		for i, p := range fn.Params {
			if i > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprintf(out, "let %s: %s", p.Name, typeName(p.Type))
		}
		fmt.Fprint(out, ")")
		if fn.HasReturnType {
			fmt.Fprintf(out, ": %s", typeName(fn.ReturnType))
		}
		fmt.Fprintf(out, " { %d statements }\n", len(fn.Body.Stmts))
	}
	return nil
}

func typeName(t ast.Type) string {
	if bt, ok := t.(*ast.BaseType); ok {
		return bt.Name
	}
	return "<type?>"
}
