package ast

import "kdc/internal/source"

// DeclStmt is `let name = value;`.
type DeclStmt struct {
	Name     string
	NameSpan source.Span
	Value    Expr
	Loc      source.Span
}

func (s *DeclStmt) Span() source.Span { return s.Loc }
func (*DeclStmt) stmtNode()           {}

// ReturnStmt is `return value;`.
type ReturnStmt struct {
	Value Expr
	Loc   source.Span
}

func (s *ReturnStmt) Span() source.Span { return s.Loc }
func (*ReturnStmt) stmtNode()           {}

// YieldStmt is `yield value;`.
type YieldStmt struct {
	Value Expr
	Loc   source.Span
}

func (s *YieldStmt) Span() source.Span { return s.Loc }
func (*YieldStmt) stmtNode()           {}
