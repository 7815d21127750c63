package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kdc/internal/diag"
	"kdc/internal/diagfmt"
	"kdc/internal/lexer"
	"kdc/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", args[0], err)
	}
	file := fs.Get(fileID)

	pretty := diagfmt.Pretty{Opts: diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), ShowPreview: true}}
	em := diag.NewEmitter(os.Stderr, fs, pretty)
	lx := lexer.New(file, source.NewInterner(), lexer.Options{Reporter: diag.StageReport{
		Emitter:  em,
		Fallback: diag.LexInvalidChar,
	}})

	out := cmd.OutOrStdout()
	for lx.HasNext() {
		tok := lx.Next()
		start, _ := fs.Resolve(tok.Span)
		switch {
		case tok.IsIdent():
			fmt.Fprintf(out, "%d:%d  %-12s %q\n", start.Line, start.Col, tok.Kind, tok.Text)
		case tok.IsLiteral():
			fmt.Fprintf(out, "%d:%d  %-12s %d\n", start.Line, start.Col, tok.Kind, tok.IntValue)
		default:
			fmt.Fprintf(out, "%d:%d  %s\n", start.Line, start.Col, tok.Kind)
		}
		if em.Aborted {
			os.Exit(1)
		}
	}
	return nil
}
