package lexer

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"kdc/internal/token"
)

// scanIdentOrKeyword scans an identifier or keyword starting at the cursor's
// current position. Identifier text is NFC-normalized before keyword lookup
// and interning; since identifiers consist only of ASCII letters, digits and
// '_', this leaves the text unchanged.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(m)
	raw := string(lx.file.Content[sp.Start:sp.End])
	text := norm.NFC.String(raw)

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp}
	}

	if lx.interner != nil {
		id := lx.interner.Intern(text)
		text = lx.interner.MustLookup(id)
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanInt scans a decimal integer literal, reporting a diagnostic and
// saturating at the uint64 maximum on overflow.
func (lx *Lexer) scanInt() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(m)
	digits := string(lx.file.Content[sp.Start:sp.End])

	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		v = ^uint64(0)
		lx.report("error", sp, "integer literal '"+digits+"' is too large")
	}
	return token.Token{Kind: token.IntLit, Span: sp, IntValue: v}
}

// scanOperatorOrPunct scans a single operator or punctuation token, or
// reports an "unexpected byte" diagnostic and returns an Invalid token.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind, ok := simpleKind(ch)
	if ok {
		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(m)}
	}

	if ch == '=' {
		if lx.cursor.Eat('>') {
			return token.Token{Kind: token.Arrow, Span: lx.cursor.SpanFrom(m)}
		}
		return token.Token{Kind: token.Eq, Span: lx.cursor.SpanFrom(m)}
	}

	sp := lx.cursor.SpanFrom(m)
	lx.report("error", sp, "unexpected '"+string(ch)+"'")
	return token.Token{Kind: token.Invalid, Span: sp}
}

func simpleKind(ch byte) (token.Kind, bool) {
	switch ch {
	case ',':
		return token.Comma, true
	case ';':
		return token.Semi, true
	case ':':
		return token.Colon, true
	case '{':
		return token.LeftBrace, true
	case '}':
		return token.RightBrace, true
	case '(':
		return token.LeftParen, true
	case ')':
		return token.RightParen, true
	case '+':
		return token.Plus, true
	case '-':
		return token.Minus, true
	default:
		return token.Invalid, false
	}
}
