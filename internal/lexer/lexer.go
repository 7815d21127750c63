package lexer

import (
	"kdc/internal/source"
	"kdc/internal/token"
)

// Lexer produces a one-token-lookahead stream of tokens over a source file.
// The lookahead is lazy: Peek only scans when first asked, and caches the
// result for the following Next.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	interner *source.Interner
	opts     Options
	look     *token.Token
}

// New constructs a Lexer over file. interner may be nil, in which case
// identifier text is not interned (Token.Text still carries it).
func New(file *source.File, interner *source.Interner, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		interner: interner,
		opts:     opts,
	}
}

// HasNext reports whether there is a non-EOF token remaining.
func (lx *Lexer) HasNext() bool {
	return lx.Peek().Kind != token.EOF
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// Next consumes and returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.scan()
}

// EmptySpan returns a zero-length span at the lexer's current position,
// useful for diagnostics that need a location before any token was read.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanInt()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// skipTrivia consumes ASCII whitespace and `//` line comments between tokens.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isSpace(ch):
			lx.cursor.Bump()
		case ch == '/' && lx.peekIs2('/', '/'):
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) peekIs2(b0, b1 byte) bool {
	p0, p1, ok := lx.cursor.Peek2()
	return ok && p0 == b0 && p1 == b1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
