package parser

import (
	"kdc/internal/ast"
	"kdc/internal/token"
)

// parseRoot implements: root := function*.
func (p *Parser) parseRoot() *ast.Root {
	root := &ast.Root{}
	for p.lx.HasNext() {
		root.Functions = append(root.Functions, p.parseFunction())
	}
	return root
}

// parseFunction implements:
// function := 'fn' ident '(' params ')' (':' type)? block
func (p *Parser) parseFunction() *ast.FunctionDecl {
	fnTok := p.expect(token.KwFn)
	name := p.expect(token.Ident)
	fn := &ast.FunctionDecl{Name: name.Text, NameSpan: name.Span, Loc: fnTok.Span}

	p.expect(token.LeftParen)
	for p.lx.Peek().Kind != token.RightParen {
		fn.Params = append(fn.Params, p.parseParam())
		p.consume(token.Comma)
	}
	p.expect(token.RightParen)

	if _, ok := p.consume(token.Colon); ok {
		fn.ReturnType = p.parseType()
		fn.HasReturnType = true
	}

	fn.Body = p.parseBlock()
	fn.Loc = fn.Loc.Cover(fn.Body.Span())
	return fn
}

// parseParam implements one element of: params := ('let' ident ':' type (',' | &')'))*.
func (p *Parser) parseParam() *ast.Param {
	letTok := p.expect(token.KwLet)
	name := p.expect(token.Ident)
	p.expect(token.Colon)
	ty := p.parseType()
	return &ast.Param{
		Name:     name.Text,
		NameSpan: name.Span,
		Type:     ty,
		Loc:      letTok.Span.Cover(ty.Span()),
	}
}

// parseType implements: type := ident.
func (p *Parser) parseType() ast.Type {
	name := p.expect(token.Ident)
	return &ast.BaseType{Name: name.Text, Loc: name.Span}
}

// parseBlock implements: block := '{' stmt* '}'.
func (p *Parser) parseBlock() *ast.Block {
	open := p.expect(token.LeftBrace)
	block := &ast.Block{Loc: open.Span}
	for p.lx.HasNext() && p.lx.Peek().Kind != token.RightBrace {
		block.Stmts = append(block.Stmts, p.parseStmt())
	}
	closeTok := p.expect(token.RightBrace)
	block.Loc = block.Loc.Cover(closeTok.Span)
	return block
}

// parseStmt implements: stmt := decl_stmt | return_stmt | yield_stmt.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseDeclStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwYield:
		return p.parseYieldStmt()
	default:
		next := p.lx.Peek()
		p.abort(next.Span, "expected a statement but got "+next.Kind.String())
		panic("unreachable")
	}
}

// parseDeclStmt implements: decl_stmt := 'let' ident '=' expr ';'.
func (p *Parser) parseDeclStmt() ast.Stmt {
	letTok := p.expect(token.KwLet)
	name := p.expect(token.Ident)
	p.expect(token.Eq)
	value := p.parseExpr()
	semi := p.expect(token.Semi)
	return &ast.DeclStmt{
		Name:     name.Text,
		NameSpan: name.Span,
		Value:    value,
		Loc:      letTok.Span.Cover(semi.Span),
	}
}

// parseReturnStmt implements: return := 'return' expr ';'.
func (p *Parser) parseReturnStmt() ast.Stmt {
	retTok := p.expect(token.KwReturn)
	value := p.parseExpr()
	semi := p.expect(token.Semi)
	return &ast.ReturnStmt{Value: value, Loc: retTok.Span.Cover(semi.Span)}
}

// parseYieldStmt implements: yield := 'yield' expr ';'.
func (p *Parser) parseYieldStmt() ast.Stmt {
	yieldTok := p.expect(token.KwYield)
	value := p.parseExpr()
	semi := p.expect(token.Semi)
	return &ast.YieldStmt{Value: value, Loc: yieldTok.Span.Cover(semi.Span)}
}
