package token

import (
	"kdc/internal/source"
)

// Token represents a single source token with its location and payload.
//
// Following spec.md's data model, Token is a tagged union: most kinds carry
// no payload, Ident carries its identifier text (Text, a string copied out
// of the source and interned when the lexer has an interner), and
// IntLit carries the decoded value (IntValue).
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string // set for Ident
	IntValue uint64 // set for IntLit
}

// IsLiteral reports whether the token is an integer literal.
func (t Token) IsLiteral() bool {
	return t.Kind == IntLit
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
