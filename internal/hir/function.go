package hir

import "kdc/internal/source"

// Function carries a lowered function's name, its parameter expression ids
// (each an Argument-kind Expr), and the ExprId of its Block body.
type Function struct {
	Name          string
	NameSpan      source.Span
	Params        []ExprId
	Body          ExprId
	HasReturnType bool
}

// Root is the output of AST→HIR lowering: an ordered function list and the
// contiguous expression arena every ExprId indexes into.
type Root struct {
	Functions []*Function
	Exprs     *Arena[Expr]
}

// NewRoot returns an empty Root ready to receive lowered functions.
func NewRoot() *Root {
	return &Root{Exprs: NewArena[Expr](64)}
}

// Expr dereferences id against the Root's arena.
func (r *Root) Expr(id ExprId) *Expr {
	return r.Exprs.Get(uint32(id))
}

// AllocExpr interns e into the arena and returns its new, stable ExprId.
func (r *Root) AllocExpr(e Expr) ExprId {
	return ExprId(r.Exprs.Allocate(e))
}

// FunctionByName returns the function declared with the given name, if any.
func (r *Root) FunctionByName(name string) (*Function, bool) {
	for _, fn := range r.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}
