package astlower

import (
	"kdc/internal/ast"
	"kdc/internal/hir"
)

func (l *lowering) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		l.lowerDeclStmt(s)
	case *ast.ReturnStmt:
		l.lowerReturnStmt(s)
	case *ast.YieldStmt:
		l.lowerYieldStmt(s)
	default:
		panic("astlower: unhandled statement kind")
	}
}

// lowerDeclStmt implements: lower value; create a Var expression with
// Infer type; append a DeclStmt to the enclosing block; bind name to the
// Var in the current scope.
func (l *lowering) lowerDeclStmt(s *ast.DeclStmt) {
	value := l.lowerExpr(s.Value)
	varID := l.root.AllocExpr(hir.Expr{Kind: hir.KindVar, Type: hir.Type{Tag: hir.Infer}, Span: s.Loc, Name: s.Name})
	l.appendStmt(hir.Stmt{Kind: hir.StmtDecl, Span: s.Loc, Var: varID, Value: value})
	l.putSymbol(s.Name, s.NameSpan, varID)
}

func (l *lowering) lowerReturnStmt(s *ast.ReturnStmt) {
	value := l.lowerExpr(s.Value)
	l.appendStmt(hir.Stmt{Kind: hir.StmtReturn, Span: s.Loc, Value: value})
}

// lowerYieldStmt implements the open-question-flagged observed behavior:
// a yield lowers to a HIR return only when the immediately enclosing
// scope (the current block scope) has a Function-kind parent; otherwise
// the value is lowered (for its side effects on the expression arena) and
// then silently dropped.
func (l *lowering) lowerYieldStmt(s *ast.YieldStmt) {
	value := l.lowerExpr(s.Value)
	if l.scope.parent != nil && l.scope.parent.kind == scopeFunction {
		l.appendStmt(hir.Stmt{Kind: hir.StmtReturn, Span: s.Loc, Value: value})
	}
}
