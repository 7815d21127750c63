package ir_test

import (
	"io"
	"testing"

	"kdc/internal/diag"
	"kdc/internal/driver"
	"kdc/internal/ir"
	"kdc/internal/source"
)

func compileForEval(t *testing.T, src string) *driver.Result {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.kd", []byte(src)))
	em := diag.NewEmitter(io.Discard, fs, nil)
	res := driver.Compile(fs, file, source.NewInterner(), em)
	if res.Aborted || res.Unit == nil {
		t.Fatalf("Compile aborted unexpectedly for:\n%s", src)
	}
	return &res
}

func TestEvalReturnsLiteral(t *testing.T) {
	res := compileForEval(t, "fn main(): u8 { return 42; }")
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestEvalCallsAnotherFunction(t *testing.T) {
	res := compileForEval(t, `
fn add(let a: u8, let b: u8): u8 { return a + b; }
fn main(): u8 { return add(2, 3); }
`)
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestEvalLocalVariable(t *testing.T) {
	res := compileForEval(t, "fn main(): u8 { let x = 1 + 2; return x; }")
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestEvalTruncatesToDeclaredWidth(t *testing.T) {
	res := compileForEval(t, "fn main(): u8 { return 250 + 10; }")
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4 (260 mod 256)", got)
	}
}

func TestEvalMatch(t *testing.T) {
	res := compileForEval(t, "fn main(): u8 { return match (1) { 1 => 10, 2 => 20, }; }")
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestEvalMatchFallthroughYieldsZero(t *testing.T) {
	res := compileForEval(t, "fn main(): u8 { return match (9) { 1 => 10, 2 => 20, }; }")
	got, err := ir.NewEval(res.Unit, res.Interner).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0 (no arm matched, result local was never stored)", got)
	}
}

func TestEvalRejectsWrongEntrySignature(t *testing.T) {
	res := compileForEval(t, "fn main(let x: u8): u8 { return x; }")
	if _, err := ir.NewEval(res.Unit, res.Interner).Run(); err == nil {
		t.Fatalf("expected Run() to reject a main with parameters")
	}
}
