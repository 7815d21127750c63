package hirlower

import (
	"kdc/internal/hir"
	"kdc/internal/ir"
)

func (l *lowering) lowerExpr(id hir.ExprId) ir.Operand {
	expr := l.root.Expr(id)
	switch expr.Kind {
	case hir.KindArgument:
		return l.lowerArgument(id)
	case hir.KindAdd, hir.KindSub:
		return l.lowerBinary(expr)
	case hir.KindBlock:
		// A block used as a value never happens in a program this pipeline
		// can produce (see astlower); preserved here only so the switch
		// stays exhaustive.
		l.lowerBlockStmts(expr.Stmts)
		panic("hirlower: block has no value when used as an expression")
	case hir.KindCall:
		return l.lowerCall(expr)
	case hir.KindConstant:
		return l.lowerConstant(expr)
	case hir.KindMatch:
		return l.lowerMatch(expr)
	case hir.KindVar:
		return l.lowerVar(id)
	default:
		panic("hirlower: unhandled expression kind")
	}
}

func (l *lowering) lowerArgument(id hir.ExprId) ir.Operand {
	idx, ok := l.argIndex[id]
	if !ok {
		panic("hirlower: argument not registered for the current function")
	}
	p := l.fn.Params[idx]
	return ir.Operand{Kind: ir.OperandValue, Type: p.Type, Value: p.ID}
}

func (l *lowering) lowerBinary(expr *hir.Expr) ir.Operand {
	op := ir.BinaryAdd
	if expr.Kind == hir.KindSub {
		op = ir.BinarySub
	}
	lhs := l.lowerExpr(expr.LHS)
	rhs := l.lowerExpr(expr.RHS)
	resultType := hirType(expr.Type)
	id := l.appendInstr(ir.Instr{Kind: ir.InstrBinary, Type: resultType, Binary: ir.BinaryInstr{Op: op, LHS: lhs, RHS: rhs}})
	return ir.Operand{Kind: ir.OperandValue, Type: resultType, Value: id}
}

func (l *lowering) lowerCall(expr *hir.Expr) ir.Operand {
	callee, ok := l.funcMap[expr.Callee]
	if !ok {
		panic("hirlower: call to a function that has not been lowered yet")
	}
	args := make([]ir.Operand, 0, len(expr.Args))
	for _, a := range expr.Args {
		args = append(args, l.lowerExpr(a))
	}
	resultType := hirType(expr.Type)
	id := l.appendInstr(ir.Instr{Kind: ir.InstrCall, Type: resultType, Call: ir.CallInstr{Callee: callee, Args: args}})
	return ir.Operand{Kind: ir.OperandValue, Type: resultType, Value: id}
}

func (l *lowering) lowerConstant(expr *hir.Expr) ir.Operand {
	return ir.Operand{Kind: ir.OperandConst, Type: hirType(expr.Type), Const: expr.Value}
}

func (l *lowering) lowerVar(id hir.ExprId) ir.Operand {
	local, ok := l.vars[id]
	if !ok {
		panic("hirlower: read of a variable before its declaration was lowered")
	}
	t := hirType(l.root.Expr(id).Type)
	value := l.appendInstr(ir.Instr{Kind: ir.InstrLoad, Type: t, Load: ir.LoadInstr{Local: local}})
	return ir.Operand{Kind: ir.OperandValue, Type: t, Value: value}
}

// lowerMatch expands a match into a chain of equality compares, one
// conditional branch per arm into a fresh true/false block pair, each arm's
// value stored into a shared result slot, then a join block that loads it
// back out. A match with no matching arm falls through every false branch
// straight into the join block without ever storing into the result slot —
// the result is then whatever the slot's backing memory happens to hold.
// This mirrors the lowering this pipeline is built from exactly: it does
// not synthesize an exhaustiveness check the source language itself never
// requires.
func (l *lowering) lowerMatch(expr *hir.Expr) ir.Operand {
	matchee := l.lowerExpr(expr.Matchee)
	resultType := hirType(expr.Type)
	resultLocal := ir.LocalID(len(l.fn.Locals))
	l.fn.Locals = append(l.fn.Locals, ir.Local{Type: resultType})
	boolType := l.types.Bool()

	var pending []ir.BlockID
	for _, arm := range expr.Arms {
		lhs := l.lowerExpr(arm.LHS)
		cmp := l.appendInstr(ir.Instr{Kind: ir.InstrCompare, Type: boolType, Compare: ir.CompareInstr{Op: ir.CompareEq, LHS: matchee, RHS: lhs}})

		trueDst := l.newBlock()
		falseDst := l.newBlock()
		l.setTerminator(ir.Terminator{
			Kind: ir.TermCondBranch,
			Cond: ir.CondBranchTerm{
				Cond: ir.Operand{Kind: ir.OperandValue, Type: boolType, Value: cmp},
				Then: trueDst,
				Else: falseDst,
			},
		})
		pending = append(pending, trueDst, falseDst)

		l.curBlock = trueDst
		rhs := l.lowerExpr(arm.RHS)
		l.appendInstr(ir.Instr{Kind: ir.InstrStore, Store: ir.StoreInstr{Local: resultLocal, Value: rhs}})
		if !l.block().Terminated() {
			pending = append(pending, l.curBlock)
		}
		l.curBlock = falseDst
	}

	join := l.newBlock()
	for _, b := range pending {
		if !l.fn.Blocks[b].Terminated() {
			l.fn.Blocks[b].Term = ir.Terminator{Kind: ir.TermBranch, Branch: ir.BranchTerm{Target: join}}
		}
	}
	l.curBlock = join
	value := l.appendInstr(ir.Instr{Kind: ir.InstrLoad, Type: resultType, Load: ir.LoadInstr{Local: resultLocal}})
	return ir.Operand{Kind: ir.OperandValue, Type: resultType, Value: value}
}
