// Package testkit asserts structural invariants over a lowered/analyzed
// HIR tree, independent of any single test case. Tests call these to catch
// a violation with a precise message instead of a confusing downstream
// panic deeper in hirlower.
package testkit

import (
	"fmt"

	"kdc/internal/hir"
)

// CheckHIRInvariants walks every function in root and verifies the shape
// AST→HIR lowering must always produce:
//  1. every function body is a Block-kind expression;
//  2. every DeclStmt.Var refers to a Var-kind expression;
//  3. every Call's lowered argument count matches its callee's parameter
//     count.
func CheckHIRInvariants(root *hir.Root) error {
	for _, fn := range root.Functions {
		body := root.Expr(fn.Body)
		if body == nil {
			return fmt.Errorf("function %q: body id %d does not resolve", fn.Name, fn.Body)
		}
		if body.Kind != hir.KindBlock {
			return fmt.Errorf("function %q: body is %v, want Block", fn.Name, body.Kind)
		}
		if err := checkBlockStmts(root, body.Stmts); err != nil {
			return fmt.Errorf("function %q: %w", fn.Name, err)
		}
	}
	return nil
}

func checkBlockStmts(root *hir.Root, stmts []hir.Stmt) error {
	for _, s := range stmts {
		switch s.Kind {
		case hir.StmtDecl:
			v := root.Expr(s.Var)
			if v == nil || v.Kind != hir.KindVar {
				return fmt.Errorf("DeclStmt.Var %d is not a Var expression", s.Var)
			}
			if err := checkExpr(root, s.Value); err != nil {
				return err
			}
		case hir.StmtReturn:
			if err := checkExpr(root, s.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkExpr(root *hir.Root, id hir.ExprId) error {
	e := root.Expr(id)
	if e == nil {
		return fmt.Errorf("expr id %d does not resolve", id)
	}
	switch e.Kind {
	case hir.KindAdd, hir.KindSub:
		if err := checkExpr(root, e.LHS); err != nil {
			return err
		}
		return checkExpr(root, e.RHS)
	case hir.KindCall:
		if e.Callee == nil {
			return fmt.Errorf("Call expr %d has a nil callee", id)
		}
		if len(e.Args) != len(e.Callee.Params) {
			return fmt.Errorf("Call expr %d passes %d args to %q, which declares %d params",
				id, len(e.Args), e.Callee.Name, len(e.Callee.Params))
		}
		for _, a := range e.Args {
			if err := checkExpr(root, a); err != nil {
				return err
			}
		}
	case hir.KindMatch:
		if err := checkExpr(root, e.Matchee); err != nil {
			return err
		}
		for _, arm := range e.Arms {
			if err := checkExpr(root, arm.LHS); err != nil {
				return err
			}
			if err := checkExpr(root, arm.RHS); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckTypesResolved verifies that every expression reachable from a
// function body carries a concrete (Real) type — the postcondition
// typecheck.Analyze must establish on success.
func CheckTypesResolved(root *hir.Root) error {
	for _, fn := range root.Functions {
		if err := checkTypeResolved(root, fn.Body); err != nil {
			return fmt.Errorf("function %q: %w", fn.Name, err)
		}
	}
	return nil
}

func checkTypeResolved(root *hir.Root, id hir.ExprId) error {
	e := root.Expr(id)
	if e == nil {
		return fmt.Errorf("expr id %d does not resolve", id)
	}
	if e.Kind != hir.KindBlock && !e.Type.IsReal() {
		return fmt.Errorf("expr id %d (%v) has no resolved type", id, e.Kind)
	}
	switch e.Kind {
	case hir.KindAdd, hir.KindSub:
		if err := checkTypeResolved(root, e.LHS); err != nil {
			return err
		}
		return checkTypeResolved(root, e.RHS)
	case hir.KindBlock:
		for _, s := range e.Stmts {
			if s.Kind == hir.StmtDecl {
				if err := checkTypeResolved(root, s.Var); err != nil {
					return err
				}
			}
			if err := checkTypeResolved(root, s.Value); err != nil {
				return err
			}
		}
	case hir.KindCall:
		for _, a := range e.Args {
			if err := checkTypeResolved(root, a); err != nil {
				return err
			}
		}
	case hir.KindMatch:
		if err := checkTypeResolved(root, e.Matchee); err != nil {
			return err
		}
		for _, arm := range e.Arms {
			if err := checkTypeResolved(root, arm.LHS); err != nil {
				return err
			}
			if err := checkTypeResolved(root, arm.RHS); err != nil {
				return err
			}
		}
	}
	return nil
}
