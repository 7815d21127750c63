package ir

import (
	"fmt"

	"kdc/internal/types"
)

// frame is one function activation's runtime state: the resolved value of
// every ValueID produced so far (parameters, then instruction results) and
// the current contents of every stack slot.
type frame struct {
	values map[ValueID]uint64
	locals []uint64
}

func newFrame(fn *Function, args []uint64) *frame {
	fr := &frame{
		values: make(map[ValueID]uint64, len(fn.Params)+len(fn.Blocks)),
		locals: make([]uint64, len(fn.Locals)),
	}
	for i, p := range fn.Params {
		fr.values[p.ID] = args[i]
	}
	return fr
}

// maxCallDepth bounds recursion so a runaway recursive function under
// evaluation fails with an error instead of exhausting the goroutine stack.
const maxCallDepth = 1 << 12

// Eval is a small tree-walking evaluator for IR, backing the "-r" CLI flag:
// it runs a Unit's functions directly, without ever lowering to machine
// code. It understands exactly the instruction and terminator set this
// language's backend-free pipeline produces.
type Eval struct {
	Unit     *Unit
	Interner *types.Interner
}

// NewEval returns an evaluator over unit, resolving operand widths through
// interner.
func NewEval(unit *Unit, interner *types.Interner) *Eval {
	return &Eval{Unit: unit, Interner: interner}
}

// Run evaluates the function named "main" with no arguments, as the "-r"
// flag does: the language has no other entrypoint convention.
func (e *Eval) Run() (uint64, error) {
	fn, ok := e.Unit.FunctionByName("main")
	if !ok {
		return 0, fmt.Errorf("ir: no function named %q", "main")
	}
	if len(fn.Params) != 0 {
		return 0, fmt.Errorf("ir: entry function %q takes %d arguments, want 0", fn.Name, len(fn.Params))
	}
	return e.Call(fn, nil, 0)
}

// Call evaluates fn with the given argument values, already in parameter
// order, and returns its return value.
func (e *Eval) Call(fn *Function, args []uint64, depth int) (uint64, error) {
	if depth > maxCallDepth {
		return 0, fmt.Errorf("ir: call depth exceeded %d evaluating %q", maxCallDepth, fn.Name)
	}
	if len(args) != len(fn.Params) {
		return 0, fmt.Errorf("ir: %q takes %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}

	fr := newFrame(fn, args)
	block := fn.Block(fn.Entry)
	for {
		for _, instr := range block.Instrs {
			if err := e.exec(fn, fr, instr, depth); err != nil {
				return 0, err
			}
		}
		switch block.Term.Kind {
		case TermReturn:
			return e.resolve(fr, block.Term.Return.Value), nil
		case TermBranch:
			block = fn.Block(block.Term.Branch.Target)
		case TermCondBranch:
			if e.resolve(fr, block.Term.Cond.Cond) != 0 {
				block = fn.Block(block.Term.Cond.Then)
			} else {
				block = fn.Block(block.Term.Cond.Else)
			}
		default:
			return 0, fmt.Errorf("ir: %q: block %d has no terminator", fn.Name, block.ID)
		}
	}
}

func (e *Eval) exec(fn *Function, fr *frame, instr Instr, depth int) error {
	switch instr.Kind {
	case InstrBinary:
		lhs := e.resolve(fr, instr.Binary.LHS)
		rhs := e.resolve(fr, instr.Binary.RHS)
		var result uint64
		switch instr.Binary.Op {
		case BinaryAdd:
			result = lhs + rhs
		case BinarySub:
			result = lhs - rhs
		default:
			return fmt.Errorf("ir: unknown binary op %d", instr.Binary.Op)
		}
		fr.values[instr.ID] = e.truncate(instr.Type, result)

	case InstrCompare:
		lhs := e.resolve(fr, instr.Compare.LHS)
		rhs := e.resolve(fr, instr.Compare.RHS)
		var result uint64
		switch instr.Compare.Op {
		case CompareEq:
			if lhs == rhs {
				result = 1
			}
		default:
			return fmt.Errorf("ir: unknown compare op %d", instr.Compare.Op)
		}
		fr.values[instr.ID] = result

	case InstrCall:
		callee := e.Unit.Functions[instr.Call.Callee]
		args := make([]uint64, len(instr.Call.Args))
		for i, a := range instr.Call.Args {
			args[i] = e.resolve(fr, a)
		}
		result, err := e.Call(callee, args, depth+1)
		if err != nil {
			return err
		}
		fr.values[instr.ID] = result

	case InstrLoad:
		fr.values[instr.ID] = fr.locals[instr.Load.Local]

	case InstrStore:
		fr.locals[instr.Store.Local] = e.resolve(fr, instr.Store.Value)

	default:
		return fmt.Errorf("ir: unknown instruction kind %d", instr.Kind)
	}
	return nil
}

func (e *Eval) resolve(fr *frame, op Operand) uint64 {
	switch op.Kind {
	case OperandConst:
		return e.truncate(op.Type, op.Const)
	case OperandValue:
		return fr.values[op.Value]
	default:
		return 0
	}
}

// truncate masks v down to the bit width of id, reproducing the wraparound
// a real fixed-width integer would have. Bool-typed or unresolvable ids are
// left untouched.
func (e *Eval) truncate(id types.TypeID, v uint64) uint64 {
	t, ok := e.Interner.Lookup(id)
	if !ok || t.Kind != types.KindUint || t.Width == 0 || t.Width >= 64 {
		return v
	}
	return v & (uint64(1)<<uint(t.Width) - 1)
}
