package ir

import (
	"fmt"
	"io"

	"kdc/internal/types"
)

// Fprint writes a human-readable dump of unit to w: one function per
// section, its locals, then its blocks in declaration order. This backs
// the "-v"/"-vv" CLI flags, which print the generated IR before handing
// it to a backend this pipeline doesn't implement.
func Fprint(w io.Writer, unit *Unit, interner *types.Interner) {
	for _, fn := range unit.Functions {
		fprintFunc(w, fn, interner)
	}
}

func fprintFunc(w io.Writer, fn *Function, interner *types.Interner) {
	fmt.Fprintf(w, "fn %s(", fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "v%d: %s", p.ID, typeStr(interner, p.Type))
	}
	fmt.Fprintf(w, "): %s\n", typeStr(interner, fn.Result))

	for i, l := range fn.Locals {
		fmt.Fprintf(w, "  local%d: %s\n", i, typeStr(interner, l.Type))
	}

	for i := range fn.Blocks {
		b := &fn.Blocks[i]
		fmt.Fprintf(w, "  bb%d:\n", b.ID)
		for _, instr := range b.Instrs {
			fmt.Fprintf(w, "    %s\n", formatInstr(interner, instr))
		}
		fmt.Fprintf(w, "    %s\n", formatTerm(b.Term))
	}
}

func formatInstr(interner *types.Interner, instr Instr) string {
	switch instr.Kind {
	case InstrBinary:
		op := "+"
		if instr.Binary.Op == BinarySub {
			op = "-"
		}
		return fmt.Sprintf("v%d = %s %s %s : %s", instr.ID, formatOperand(instr.Binary.LHS), op, formatOperand(instr.Binary.RHS), typeStr(interner, instr.Type))
	case InstrCall:
		args := ""
		for i, a := range instr.Call.Args {
			if i > 0 {
				args += ", "
			}
			args += formatOperand(a)
		}
		return fmt.Sprintf("v%d = call fn%d(%s) : %s", instr.ID, instr.Call.Callee, args, typeStr(interner, instr.Type))
	case InstrCompare:
		return fmt.Sprintf("v%d = %s == %s", instr.ID, formatOperand(instr.Compare.LHS), formatOperand(instr.Compare.RHS))
	case InstrLoad:
		return fmt.Sprintf("v%d = load local%d", instr.ID, instr.Load.Local)
	case InstrStore:
		return fmt.Sprintf("store local%d, %s", instr.Store.Local, formatOperand(instr.Store.Value))
	default:
		return "<instr?>"
	}
}

func formatTerm(t Terminator) string {
	switch t.Kind {
	case TermReturn:
		return fmt.Sprintf("return %s", formatOperand(t.Return.Value))
	case TermBranch:
		return fmt.Sprintf("branch bb%d", t.Branch.Target)
	case TermCondBranch:
		return fmt.Sprintf("branch %s, bb%d, bb%d", formatOperand(t.Cond.Cond), t.Cond.Then, t.Cond.Else)
	default:
		return "unreachable"
	}
}

func formatOperand(op Operand) string {
	switch op.Kind {
	case OperandConst:
		return fmt.Sprintf("%d", op.Const)
	case OperandValue:
		return fmt.Sprintf("v%d", op.Value)
	default:
		return "<op?>"
	}
}

func typeStr(interner *types.Interner, id types.TypeID) string {
	if interner == nil {
		return fmt.Sprintf("type#%d", id)
	}
	return interner.String(id)
}
