package typecheck

import (
	"fmt"

	"kdc/internal/hir"
	"kdc/internal/types"
)

// unifier drains the constraint stacks the constrainer built, assigning
// concrete types and reporting diagnostics along the way. Each expression's
// own stack is drained before its children are visited: an expression whose
// context already resolved a type (e.g. a declared variable read by a
// later-in-source-order return statement) can hand that type down into its
// own operands before they are visited.
type unifier struct {
	root        *hir.Root
	constraints []stack
	interner    *types.Interner
	reporter    *countingReporter
}

func newUnifier(root *hir.Root, constraints []stack, interner *types.Interner, reporter *countingReporter) *unifier {
	return &unifier{root: root, constraints: constraints, interner: interner, reporter: reporter}
}

// run drains every function's constraints in source order, but stops as
// soon as reporter has seen a diagnostic: a type error in one function
// must terminate analysis before a second, unrelated function's error is
// ever reported.
func (u *unifier) run() {
	for _, fn := range u.root.Functions {
		if u.reporter.count > 0 {
			return
		}
		u.analyseExpr(fn.Body)
	}
}

// setType honors Argument and Call's authoritative, construction-time type:
// any later attempt to retype them is silently ignored.
func (u *unifier) setType(id hir.ExprId, t hir.Type) {
	e := u.root.Expr(id)
	if e.Kind == hir.KindArgument || e.Kind == hir.KindCall {
		return
	}
	e.Type = t
}

func (u *unifier) typeString(t hir.Type) string {
	if !t.IsReal() {
		return "<unresolved>"
	}
	return u.interner.String(t.Handle)
}

func (u *unifier) analyseExpr(id hir.ExprId) {
	if u.reporter.count > 0 {
		return
	}

	expr := u.root.Expr(id)

	if expr.Kind == hir.KindBlock {
		u.analyseBlockStmts(expr.Stmts)
		return
	}
	if expr.Kind == hir.KindVar && len(u.constraints[id]) == 0 {
		return
	}

	var visited []Constraint
	for len(u.constraints[id]) > 0 {
		c, _ := u.constraints[id].pop()
		switch c.Kind {
		case Equals:
			u.drainEquals(id, expr, c, visited)
		case ImplicitlyCastable:
			if !expr.Type.IsReal() {
				u.setType(id, u.root.Expr(c.TargetID).Type)
			}
		case IntegerWidth:
			u.drainIntegerWidth(id, expr, c, visited)
		}
		visited = append(visited, c)
	}

	switch expr.Kind {
	case hir.KindAdd, hir.KindSub:
		u.analyseExpr(expr.LHS)
		u.analyseExpr(expr.RHS)
	case hir.KindCall:
		for _, a := range expr.Args {
			u.analyseExpr(a)
		}
	case hir.KindMatch:
		u.analyseExpr(expr.Matchee)
		for _, arm := range expr.Arms {
			u.analyseExpr(arm.LHS)
			u.analyseExpr(arm.RHS)
		}
	}
}

func (u *unifier) drainEquals(id hir.ExprId, expr *hir.Expr, c Constraint, visited []Constraint) {
	target := u.root.Expr(c.TargetID).Type
	u.setType(id, target)
	for _, c2 := range visited {
		if c2.Kind != ImplicitlyCastable {
			continue
		}
		castTo := u.root.Expr(c2.TargetID).Type
		if castTo.IsReal() && !expr.Type.Equal(castTo) {
			u.reporter.Report("error", expr.Span,
				fmt.Sprintf("cannot implicitly cast from %s to %s", u.typeString(expr.Type), u.typeString(castTo)),
				Note{Span: u.root.Expr(c2.TargetID).Span, Msg: "constrained here"})
		}
	}
}

func (u *unifier) drainIntegerWidth(id hir.ExprId, expr *hir.Expr, c Constraint, visited []Constraint) {
	u.setType(id, hir.Type{Tag: hir.Real, Handle: u.interner.Uint(c.Width)})
	for _, c2 := range visited {
		if c2.Kind != ImplicitlyCastable {
			continue
		}
		target := u.root.Expr(c2.TargetID)
		if !target.Type.IsReal() {
			continue
		}
		targetType := u.interner.MustLookup(target.Type.Handle)
		if targetType.Kind != types.KindUint {
			panic("typecheck: implicit cast target is not an integer type")
		}
		if targetType.Width < c.Width {
			literal := fmt.Sprintf("a u%d", c.Width)
			if expr.Kind == hir.KindConstant {
				literal = fmt.Sprintf("the literal '%d' (u%d)", expr.Value, c.Width)
			}
			var notes []Note
			if target.Kind == hir.KindArgument {
				notes = append(notes, Note{Span: target.Span, Msg: fmt.Sprintf("parameter declared as u%d here", targetType.Width)})
			}
			u.reporter.Report("error", expr.Span,
				fmt.Sprintf("implicit truncation from %s to u%d is not allowed", literal, targetType.Width), notes...)
		}
		u.setType(id, target.Type)
	}
}

func (u *unifier) analyseBlockStmts(stmts []hir.Stmt) {
	for _, s := range stmts {
		if u.reporter.count > 0 {
			return
		}
		switch s.Kind {
		case hir.StmtDecl:
			u.analyseExpr(s.Var)
			u.analyseExpr(s.Value)
			v := u.root.Expr(s.Var)
			if !v.Type.IsReal() {
				v.Type = u.root.Expr(s.Value).Type
			}
		case hir.StmtReturn:
			u.analyseExpr(s.Value)
		}
	}
}
