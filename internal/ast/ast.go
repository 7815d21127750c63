// Package ast defines the owned syntax tree produced by the parser.
//
// Each parent node exclusively owns its children: there is no sharing and no
// arena indirection here (that comes later, in the HIR). Node kinds are
// expressed as small Go interfaces with one concrete type per variant, so a
// lowering pass matches exhaustively with a type switch instead of a
// visitor.
package ast

import "kdc/internal/source"

// Node is implemented by every AST node and exposes its source location.
type Node interface {
	Span() source.Span
}

// Stmt is implemented by the statement variants: DeclStmt, ReturnStmt,
// YieldStmt.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by the expression variants: BinaryExpr, CallExpr,
// IntegerLiteral, MatchExpr, Symbol, Block.
type Expr interface {
	Node
	exprNode()
}

// Type is implemented by the type variants. Currently there is only
// BaseType, but the interface keeps type positions extensible.
type Type interface {
	Node
	typeNode()
}

// Root is the top-level node: an ordered sequence of function declarations.
type Root struct {
	Functions []*FunctionDecl
}

func (r *Root) Span() source.Span {
	if len(r.Functions) == 0 {
		return source.Span{}
	}
	return r.Functions[0].Span().Cover(r.Functions[len(r.Functions)-1].Span())
}

// Param is a single function parameter: `let name: type`.
type Param struct {
	Name     string
	NameSpan source.Span
	Type     Type
	Loc      source.Span
}

func (p *Param) Span() source.Span { return p.Loc }

// FunctionDecl is `fn name(params) (: type)? block`.
type FunctionDecl struct {
	Name          string
	NameSpan      source.Span
	Params        []*Param
	ReturnType    Type // nil when HasReturnType is false
	HasReturnType bool
	Body          *Block
	Loc           source.Span
}

func (f *FunctionDecl) Span() source.Span { return f.Loc }

// Block is `{ stmt* }`, used both as a function body and as an expression.
type Block struct {
	Stmts []Stmt
	Loc   source.Span
}

func (b *Block) Span() source.Span { return b.Loc }
func (*Block) exprNode()           {}
