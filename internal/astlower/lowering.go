// Package astlower lowers an owned AST into the flat, id-addressed HIR: it
// resolves names against a stack of lexical scopes and interns every
// expression into the HIR arena as it goes.
package astlower

import (
	"errors"

	"kdc/internal/ast"
	"kdc/internal/hir"
	"kdc/internal/source"
	"kdc/internal/types"
)

// ErrAborted is returned by Lower when a diagnostic was reported and
// lowering stopped before producing a complete HIR root.
var ErrAborted = errors.New("astlower: aborted after diagnostic")

type bailout struct{}

type lowering struct {
	root         *hir.Root
	types        *types.Interner
	functionMap  map[string]*hir.Function
	scope        *scope
	currentBlock hir.ExprId
	reporter     Reporter
}

// Lower runs AST→HIR lowering over astRoot, interning every expression
// through interner. reporter may be nil, in which case diagnostics are
// discarded but lowering still aborts.
func Lower(astRoot *ast.Root, interner *types.Interner, reporter Reporter) (root *hir.Root, err error) {
	l := &lowering{
		root:        hir.NewRoot(),
		types:       interner,
		functionMap: make(map[string]*hir.Function),
		reporter:    reporter,
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); ok {
				root, err = nil, ErrAborted
				return
			}
			panic(r)
		}
	}()
	l.scope = newScope(scopeRoot, nil)
	for _, fn := range astRoot.Functions {
		l.lowerFunction(fn)
	}
	return l.root, nil
}

func (l *lowering) abort(sp source.Span, msg string, notes ...Note) {
	if l.reporter != nil {
		l.reporter.Report("error", sp, msg, notes...)
	}
	panic(bailout{})
}
