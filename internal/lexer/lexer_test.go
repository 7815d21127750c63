package lexer_test

import (
	"testing"

	"kdc/internal/lexer"
	"kdc/internal/source"
	"kdc/internal/token"
)

type recordingReporter struct {
	kinds []string
	msgs  []string
}

func (r *recordingReporter) Report(kind string, _ source.Span, msg string) {
	r.kinds = append(r.kinds, kind)
	r.msgs = append(r.msgs, msg)
}

func newFile(t *testing.T, fs *source.FileSet, content string) *source.File {
	t.Helper()
	id := fs.AddVirtual("test.kd", []byte(content))
	return fs.Get(id)
}

func collect(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for lx.HasNext() {
		toks = append(toks, lx.Next())
	}
	toks = append(toks, lx.Next()) // trailing EOF
	return toks
}

func TestLexerBasicTokens(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "fn main(): u8 { return 42; }")

	lx := lexer.New(f, nil, lexer.Options{})
	toks := collect(lx)

	want := []token.Kind{
		token.KwFn, token.Ident, token.LeftParen, token.RightParen,
		token.Colon, token.Ident, token.LeftBrace,
		token.KwReturn, token.IntLit, token.Semi,
		token.RightBrace, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[8].IntValue != 42 {
		t.Errorf("int literal: got %d, want 42", toks[8].IntValue)
	}
}

func TestLexerEqVsArrow(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "= =>")

	lx := lexer.New(f, nil, lexer.Options{})
	toks := collect(lx)

	if len(toks) != 3 || toks[0].Kind != token.Eq || toks[1].Kind != token.Arrow || toks[2].Kind != token.EOF {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "let x")

	lx := lexer.New(f, nil, lexer.Options{})
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != token.KwLet || p2.Kind != token.KwLet {
		t.Fatalf("Peek should be idempotent, got %v then %v", p1.Kind, p2.Kind)
	}
	n := lx.Next()
	if n.Kind != token.KwLet {
		t.Fatalf("Next after Peek: got %v, want KwLet", n.Kind)
	}
	n2 := lx.Next()
	if n2.Kind != token.Ident || n2.Text != "x" {
		t.Fatalf("second Next: got %v %q", n2.Kind, n2.Text)
	}
}

func TestLexerLineComment(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "let x // comment until newline\n= 1;")

	lx := lexer.New(f, nil, lexer.Options{})
	toks := collect(lx)
	want := []token.Kind{token.KwLet, token.Ident, token.Eq, token.IntLit, token.Semi, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerUnexpectedByte(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "@")

	rep := &recordingReporter{}
	lx := lexer.New(f, nil, lexer.Options{Reporter: rep})
	toks := collect(lx)

	if len(toks) != 2 || toks[0].Kind != token.Invalid || toks[1].Kind != token.EOF {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	if len(rep.msgs) != 1 {
		t.Fatalf("want exactly one diagnostic, got %d: %v", len(rep.msgs), rep.msgs)
	}
}

func TestLexerIntOverflowSaturates(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "99999999999999999999999999999")

	rep := &recordingReporter{}
	lx := lexer.New(f, nil, lexer.Options{Reporter: rep})
	tok := lx.Next()

	if tok.Kind != token.IntLit {
		t.Fatalf("got %v, want IntLit", tok.Kind)
	}
	if tok.IntValue != ^uint64(0) {
		t.Errorf("want saturated value, got %d", tok.IntValue)
	}
	if len(rep.msgs) != 1 {
		t.Fatalf("want exactly one overflow diagnostic, got %d", len(rep.msgs))
	}
}

func TestLexerIdentInterning(t *testing.T) {
	fs := source.NewFileSet()
	f := newFile(t, fs, "foo foo bar")

	interner := source.NewInterner()
	lx := lexer.New(f, interner, lexer.Options{})

	a := lx.Next()
	b := lx.Next()
	c := lx.Next()
	if a.Text != "foo" || b.Text != "foo" || c.Text != "bar" {
		t.Fatalf("unexpected identifier text: %q %q %q", a.Text, b.Text, c.Text)
	}
	if interner.Len() != 3 { // NoStringID + "foo" + "bar"
		t.Errorf("interner.Len() = %d, want 3", interner.Len())
	}
}
