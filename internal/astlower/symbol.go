package astlower

import (
	"kdc/internal/hir"
	"kdc/internal/source"
)

// lookupSymbol resolves name against the current scope chain, aborting
// with "use of undeclared symbol" if nothing binds it.
func (l *lowering) lookupSymbol(name string, sp source.Span) hir.ExprId {
	if id, ok := l.scope.find(name); ok {
		return id
	}
	l.abort(sp, "use of undeclared symbol '"+name+"'")
	panic("unreachable")
}

// putSymbol binds name to id in the current scope, aborting with a
// "originally declared here" note if name is already reachable.
func (l *lowering) putSymbol(name string, sp source.Span, id hir.ExprId) {
	existing, redeclared := l.scope.put(name, id)
	if redeclared {
		note := Note{Span: l.root.Expr(existing).Span, Msg: "symbol originally declared here"}
		l.abort(sp, "attempted redeclaration of symbol '"+name+"'", note)
	}
}
