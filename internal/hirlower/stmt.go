package hirlower

import (
	"kdc/internal/hir"
	"kdc/internal/ir"
)

func (l *lowering) lowerBlockStmts(stmts []hir.Stmt) {
	for _, s := range stmts {
		switch s.Kind {
		case hir.StmtDecl:
			l.lowerDeclStmt(s)
		case hir.StmtReturn:
			l.lowerReturnStmt(s)
		}
	}
}

func (l *lowering) lowerDeclStmt(s hir.Stmt) {
	local := ir.LocalID(len(l.fn.Locals))
	l.fn.Locals = append(l.fn.Locals, ir.Local{Type: hirType(l.root.Expr(s.Var).Type)})
	value := l.lowerExpr(s.Value)
	l.appendInstr(ir.Instr{Kind: ir.InstrStore, Store: ir.StoreInstr{Local: local, Value: value}})
	l.vars[s.Var] = local
}

func (l *lowering) lowerReturnStmt(s hir.Stmt) {
	value := l.lowerExpr(s.Value)
	l.setTerminator(ir.Terminator{Kind: ir.TermReturn, Return: ir.ReturnTerm{Value: value}})
}
