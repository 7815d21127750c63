package ast

import "kdc/internal/source"

// BaseType is a named type as written in source: `u8`, `u32`, `bool`, etc.
type BaseType struct {
	Name string
	Loc  source.Span
}

func (t *BaseType) Span() source.Span { return t.Loc }
func (*BaseType) typeNode()           {}
