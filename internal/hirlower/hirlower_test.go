package hirlower_test

import (
	"testing"

	"kdc/internal/astlower"
	"kdc/internal/hir"
	"kdc/internal/hirlower"
	"kdc/internal/ir"
	"kdc/internal/lexer"
	"kdc/internal/parser"
	"kdc/internal/source"
	"kdc/internal/testkit"
	"kdc/internal/typecheck"
	"kdc/internal/types"
)

// recorder implements lexer.Reporter and parser.Reporter, both of which take
// no notes.
type recorder struct {
	msgs []string
}

func (r *recorder) Report(_ string, _ source.Span, msg string) {
	r.msgs = append(r.msgs, msg)
}

// astReporter adapts a recorder to astlower.Reporter, whose notes are typed
// astlower.Note.
type astReporter struct {
	*recorder
}

func (r *astReporter) Report(_ string, _ source.Span, msg string, _ ...astlower.Note) {
	r.msgs = append(r.msgs, msg)
}

// typecheckReporter adapts a recorder to typecheck.Reporter, whose notes are
// typed typecheck.Note.
type typecheckReporter struct {
	*recorder
}

func (r *typecheckReporter) Report(_ string, _ source.Span, msg string, _ ...typecheck.Note) {
	r.msgs = append(r.msgs, msg)
}

func lowerHIR(t *testing.T, src string) (*hir.Root, *types.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.kd", []byte(src)))
	base := &recorder{}
	lx := lexer.New(f, nil, lexer.Options{Reporter: base})
	astRoot, err := parser.New(lx, base).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v, diagnostics = %v", err, base.msgs)
	}
	interner := types.NewInterner()
	root, err := astlower.Lower(astRoot, interner, &astReporter{recorder: base})
	if err != nil {
		t.Fatalf("Lower() error = %v, diagnostics = %v", err, base.msgs)
	}
	if err := typecheck.Analyze(root, interner, &typecheckReporter{recorder: base}); err != nil {
		t.Fatalf("Analyze() error = %v, diagnostics = %v", err, base.msgs)
	}
	if err := testkit.CheckTypesResolved(root); err != nil {
		t.Fatalf("CheckTypesResolved: %v", err)
	}
	return root, interner
}

func lower(t *testing.T, src string) *ir.Unit {
	t.Helper()
	root, interner := lowerHIR(t, src)
	if err := testkit.CheckHIRInvariants(root); err != nil {
		t.Fatalf("CheckHIRInvariants: %v", err)
	}
	return hirlower.Lower(root, interner)
}

func TestLowerLiteralReturn(t *testing.T) {
	unit := lower(t, "fn main(): u8 { return 42; }")
	fn, ok := unit.FunctionByName("main")
	if !ok {
		t.Fatalf("main not found")
	}
	entry := fn.Block(fn.Entry)
	if entry.Term.Kind != ir.TermReturn {
		t.Fatalf("entry block is not terminated by a return: %v", entry.Term.Kind)
	}
	if entry.Term.Return.Value.Kind != ir.OperandConst || entry.Term.Return.Value.Const != 42 {
		t.Fatalf("unexpected return operand: %#v", entry.Term.Return.Value)
	}
}

func TestLowerCallProducesCallInstr(t *testing.T) {
	unit := lower(t, "fn add(let a: u8, let b: u8): u8 { return a + b; } fn main(): u8 { return add(2, 3); }")
	mainFn, _ := unit.FunctionByName("main")
	addFn, _ := unit.FunctionByName("add")
	entry := mainFn.Block(mainFn.Entry)
	if len(entry.Instrs) != 1 || entry.Instrs[0].Kind != ir.InstrCall {
		t.Fatalf("expected a single Call instruction, got %#v", entry.Instrs)
	}
	if entry.Instrs[0].Call.Callee != addFn.ID {
		t.Fatalf("call does not target add's FuncID")
	}
	if len(entry.Instrs[0].Call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(entry.Instrs[0].Call.Args))
	}
}

func TestLowerMatchBranchesAndJoins(t *testing.T) {
	unit := lower(t, "fn main(): u8 { return match (1) { 1 => 10, 2 => 20, }; }")
	fn, _ := unit.FunctionByName("main")
	entry := fn.Block(fn.Entry)
	if entry.Term.Kind != ir.TermCondBranch {
		t.Fatalf("expected the entry block's first arm compare to end in a cond branch, got %v", entry.Term.Kind)
	}
	if len(entry.Instrs) != 1 || entry.Instrs[0].Kind != ir.InstrCompare {
		t.Fatalf("expected a single Compare instruction in the entry block, got %#v", entry.Instrs)
	}
	// 2 arms * 2 blocks (true/false) each + 1 join block, plus the entry.
	if len(fn.Blocks) != 1+2*2+1 {
		t.Fatalf("unexpected block count: %d", len(fn.Blocks))
	}
	var joins int
	for _, b := range fn.Blocks {
		if b.Term.Kind == ir.TermBranch {
			joins++
		}
	}
	if joins == 0 {
		t.Fatalf("expected at least one block branching into the join block")
	}
}

func TestLowerDeclStmtUsesStackSlot(t *testing.T) {
	unit := lower(t, "fn main(): u8 { let x = 1 + 2; return x; }")
	fn, _ := unit.FunctionByName("main")
	if len(fn.Locals) != 1 {
		t.Fatalf("expected exactly one local for x, got %d", len(fn.Locals))
	}
	entry := fn.Block(fn.Entry)
	var stores, loads int
	for _, in := range entry.Instrs {
		switch in.Kind {
		case ir.InstrStore:
			stores++
		case ir.InstrLoad:
			loads++
		}
	}
	if stores != 1 || loads != 1 {
		t.Fatalf("expected 1 store and 1 load, got %d stores, %d loads", stores, loads)
	}
}
