// Package hirlower turns a type-checked HIR tree into the strictly-typed
// ir.Unit: one IR function per HIR function, a single entry block each,
// straight-line instructions, and match expressions expanded into a chain
// of equality compares and conditional branches into per-arm blocks that
// join back into a result load.
package hirlower

import (
	"kdc/internal/hir"
	"kdc/internal/ir"
	"kdc/internal/types"
)

type lowering struct {
	root     *hir.Root
	types    *types.Interner
	unit     *ir.Unit
	fn       *ir.Function
	curBlock ir.BlockID
	funcMap  map[*hir.Function]ir.FuncID
	vars     map[hir.ExprId]ir.LocalID
	argIndex map[hir.ExprId]int
}

// Lower lowers every function in root into unit.Functions, in declaration
// order (a callee is always lowered before any caller that references it,
// matching astlower's own scoping invariant).
func Lower(root *hir.Root, interner *types.Interner) *ir.Unit {
	l := &lowering{
		root:    root,
		types:   interner,
		unit:    &ir.Unit{},
		funcMap: make(map[*hir.Function]ir.FuncID),
	}
	for _, fn := range root.Functions {
		l.lowerFunction(fn)
	}
	return l.unit
}

// hirType unwraps a resolved HIR type. Every expression reachable here has
// already passed type analysis, so an unresolved type at this point is a
// compiler bug, not a user error.
func hirType(t hir.Type) types.TypeID {
	if !t.IsReal() {
		panic("hirlower: expression has no resolved type")
	}
	return t.Handle
}

func (l *lowering) block() *ir.Block {
	return &l.fn.Blocks[l.curBlock]
}

func (l *lowering) newBlock() ir.BlockID {
	id := ir.BlockID(len(l.fn.Blocks))
	l.fn.Blocks = append(l.fn.Blocks, ir.Block{ID: id})
	return id
}

func (l *lowering) setTerminator(t ir.Terminator) {
	l.fn.Blocks[l.curBlock].Term = t
}

func (l *lowering) appendInstr(instr ir.Instr) ir.ValueID {
	instr.ID = l.fn.AllocValue()
	l.fn.Blocks[l.curBlock].Instrs = append(l.fn.Blocks[l.curBlock].Instrs, instr)
	return instr.ID
}

func (l *lowering) lowerFunction(fn *hir.Function) {
	params := make([]ir.Param, 0, len(fn.Params))
	argIndex := make(map[hir.ExprId]int, len(fn.Params))
	for i, p := range fn.Params {
		pt := hirType(l.root.Expr(p).Type)
		params = append(params, ir.Param{ID: ir.ValueID(i), Type: pt})
		argIndex[p] = i
	}

	irFn := &ir.Function{
		ID:     ir.FuncID(len(l.unit.Functions)),
		Name:   fn.Name,
		Params: params,
		Result: hirType(l.root.Expr(fn.Body).Type),
	}
	irFn.SeedValues(len(params))
	entry := ir.BlockID(0)
	irFn.Blocks = append(irFn.Blocks, ir.Block{ID: entry})
	irFn.Entry = entry

	l.fn = irFn
	l.curBlock = entry
	l.vars = make(map[hir.ExprId]ir.LocalID)
	l.argIndex = argIndex
	l.funcMap[fn] = irFn.ID
	l.unit.Functions = append(l.unit.Functions, irFn)

	l.lowerBlockStmts(l.root.Expr(fn.Body).Stmts)
}
