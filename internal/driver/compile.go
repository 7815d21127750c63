// Package driver orchestrates the pipeline stages (lex, parse, lower,
// typecheck, lower-to-IR) over a single file, and fans a directory of
// independent files out across goroutines for `kdc build`.
package driver

import (
	"fmt"
	"io"

	"kdc/internal/astlower"
	"kdc/internal/buildpipeline"
	"kdc/internal/diag"
	"kdc/internal/diagfmt"
	"kdc/internal/hir"
	"kdc/internal/hirlower"
	"kdc/internal/ir"
	"kdc/internal/lexer"
	"kdc/internal/parser"
	"kdc/internal/source"
	"kdc/internal/typecheck"
	"kdc/internal/types"
)

// Result is the outcome of compiling a single file through every stage the
// Emitter did not abort on.
type Result struct {
	AST      bool
	HIR      *hir.Root
	Unit     *ir.Unit
	Interner *types.Interner
	Aborted  bool
}

// Compile runs a file through lex → parse → AST-lower → typecheck →
// HIR-lower, reporting diagnostics through em and stopping at the first
// stage that aborts. onStage, if given, is called as each stage begins, so
// a caller driving a progress UI (see buildOne) can report finer-grained
// status than "queued" / "done" / "error".
func Compile(fs *source.FileSet, file *source.File, interner *source.Interner, em *diag.Emitter, onStage ...func(buildpipeline.Stage)) Result {
	notify := func(s buildpipeline.Stage) {
		for _, f := range onStage {
			f(s)
		}
	}

	notify(buildpipeline.StageLex)
	lx := lexer.New(file, interner, lexer.Options{Reporter: diag.StageReport{
		Emitter:  em,
		Codes:    map[string]diag.Code{"integer literal": diag.LexMalformedDigit},
		Fallback: diag.LexInvalidChar,
	}})

	notify(buildpipeline.StageParse)
	astRoot, err := parser.New(lx, diag.StageReport{
		Emitter:  em,
		Codes:    map[string]diag.Code{"expected": diag.SynExpectedToken},
		Fallback: diag.SynUnexpectedToken,
	}).Parse()
	if err != nil || em.Aborted {
		return Result{Aborted: true}
	}

	notify(buildpipeline.StageLower)
	typesInterner := types.NewInterner()
	root, err := astlower.Lower(astRoot, typesInterner, diag.AstLowerReport{Emitter: em})
	if err != nil || em.Aborted {
		return Result{AST: true, Aborted: true}
	}

	notify(buildpipeline.StageTypecheck)
	if err := typecheck.Analyze(root, typesInterner, diag.TypecheckReport{Emitter: em}); err != nil || em.Aborted {
		return Result{AST: true, HIR: root, Interner: typesInterner, Aborted: true}
	}

	notify(buildpipeline.StageIR)
	unit := hirlower.Lower(root, typesInterner)
	return Result{AST: true, HIR: root, Unit: unit, Interner: typesInterner, Aborted: false}
}

// CompileFile loads path into fs and compiles it, printing diagnostics with
// pretty to w.
func CompileFile(w io.Writer, fs *source.FileSet, path string, pretty diagfmt.Pretty) (Result, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %q: %w", path, err)
	}
	em := diag.NewEmitter(w, fs, pretty)
	res := Compile(fs, fs.Get(fileID), source.NewInterner(), em)
	return res, nil
}
