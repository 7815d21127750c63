package typecheck

import (
	"math"

	"fortio.org/safecast"

	"kdc/internal/hir"
	"kdc/internal/types"
)

// constrainer walks every function body once, pushing typing constraints
// onto each expression's stack. It never reports diagnostics or resolves
// types itself — that is the unifier's job.
type constrainer struct {
	root        *hir.Root
	constraints []stack
	function    *hir.Function
}

func newConstrainer(root *hir.Root) *constrainer {
	return &constrainer{
		root:        root,
		constraints: make([]stack, root.Exprs.Len()+1),
	}
}

func (c *constrainer) run() []stack {
	for _, fn := range c.root.Functions {
		c.function = fn
		for _, param := range fn.Params {
			c.constraints[param].push(Constraint{Kind: Equals, TargetID: param})
		}
		c.analyseExpr(fn.Body)
	}
	return c.constraints
}

func (c *constrainer) analyseExpr(id hir.ExprId) {
	expr := c.root.Expr(id)
	switch expr.Kind {
	case hir.KindArgument, hir.KindVar:
		// No self-constraints: Argument's type is authoritative from
		// construction, and Var has no declared-type syntax to constrain.
	case hir.KindAdd, hir.KindSub:
		c.analyseBinary(id, expr.LHS, expr.RHS)
	case hir.KindBlock:
		c.analyseBlock(expr.Stmts)
	case hir.KindCall:
		c.analyseCall(id, expr.Callee, expr.Args)
	case hir.KindConstant:
		c.analyseConstant(id, expr.Value)
	case hir.KindMatch:
		c.analyseMatch(id, expr.Matchee, expr.Arms)
	}
}

func (c *constrainer) analyseBinary(id, lhs, rhs hir.ExprId) {
	c.analyseExpr(lhs)
	c.analyseExpr(rhs)
	c.constraints[lhs].push(Constraint{Kind: ImplicitlyCastable, TargetID: id})
	c.constraints[rhs].push(Constraint{Kind: ImplicitlyCastable, TargetID: id})
}

func (c *constrainer) analyseBlock(stmts []hir.Stmt) {
	for _, stmt := range stmts {
		switch stmt.Kind {
		case hir.StmtDecl:
			c.analyseExpr(stmt.Value)
			c.constraints[stmt.Value].push(Constraint{Kind: ImplicitlyCastable, TargetID: stmt.Var})
		case hir.StmtReturn:
			c.analyseExpr(stmt.Value)
			c.constraints[stmt.Value].push(Constraint{Kind: ImplicitlyCastable, TargetID: c.function.Body})
		}
	}
}

func (c *constrainer) analyseCall(id hir.ExprId, callee *hir.Function, args []hir.ExprId) {
	c.constraints[id].push(Constraint{Kind: Equals, TargetID: callee.Body})
	for i, argID := range args {
		c.analyseExpr(argID)
		c.constraints[argID].push(Constraint{Kind: ImplicitlyCastable, TargetID: callee.Params[i]})
	}
}

func (c *constrainer) analyseConstant(id hir.ExprId, value uint64) {
	c.constraints[id].push(Constraint{Kind: IntegerWidth, Width: literalWidth(value)})
}

func (c *constrainer) analyseMatch(id, matchee hir.ExprId, arms []hir.MatchArm) {
	c.analyseExpr(matchee)
	for _, arm := range arms {
		c.analyseExpr(arm.LHS)
		c.analyseExpr(arm.RHS)
		c.constraints[matchee].push(Constraint{Kind: ImplicitlyCastable, TargetID: arm.LHS})
		c.constraints[arm.LHS].push(Constraint{Kind: ImplicitlyCastable, TargetID: matchee})
		c.constraints[arm.RHS].push(Constraint{Kind: ImplicitlyCastable, TargetID: id})
	}
}

// literalWidth is an integer literal's natural minimum bit width:
// ceil(log2(max(v, 1))).
func literalWidth(v uint64) types.Width {
	n := int(math.Ceil(math.Log2(math.Max(float64(v), 1))))
	w, err := safecast.Conv[types.Width](n)
	if err != nil {
		panic("typecheck: literal width overflows types.Width")
	}
	return w
}
