package parser

import (
	"kdc/internal/ast"
	"kdc/internal/token"
)

// Add and Sub share precedence 1; there is no other level yet.
const binOpPrecedence = 1

// parseExpr implements the two-stack precedence-climbing algorithm: maintain
// an operand stack and an operator stack. On each iteration, either an
// infix operator is read and folds any higher-or-equal-precedence operator
// already on the stack, or a primary expression is parsed. The loop stops
// when neither applies, then the remaining operators are drained.
func (p *Parser) parseExpr() ast.Expr {
	var operands []ast.Expr
	var operators []ast.BinOp

	for {
		op1, isOp := p.peekBinOp()
		if !isOp {
			primary, ok := p.tryParsePrimary()
			if !ok {
				break
			}
			operands = append(operands, primary)
			continue
		}
		opTok := p.lx.Next()
		for len(operators) > 0 {
			if len(operands) < 2 {
				p.abort(opTok.Span, "expected expression before "+opTok.Kind.String())
			}
			// Add and Sub always compare equal, so every pending operator
			// folds before a new one is pushed: ties left-associate.
			operands, operators = foldOne(operands, operators)
		}
		operators = append(operators, op1)
	}

	for len(operators) > 0 {
		if len(operands) < 2 {
			next := p.lx.Peek()
			p.abort(next.Span, "expected expression before "+next.Kind.String())
		}
		operands, operators = foldOne(operands, operators)
	}

	if len(operands) != 1 {
		next := p.lx.Peek()
		p.abort(next.Span, "expected expression before "+next.Kind.String())
	}
	return operands[0]
}

func foldOne(operands []ast.Expr, operators []ast.BinOp) ([]ast.Expr, []ast.BinOp) {
	op := operators[len(operators)-1]
	operators = operators[:len(operators)-1]
	rhs := operands[len(operands)-1]
	lhs := operands[len(operands)-2]
	operands = operands[:len(operands)-2]
	bin := &ast.BinaryExpr{Op: op, LHS: lhs, RHS: rhs, Loc: lhs.Span().Cover(rhs.Span())}
	return append(operands, bin), operators
}

func (p *Parser) peekBinOp() (ast.BinOp, bool) {
	switch p.lx.Peek().Kind {
	case token.Plus:
		return ast.Add, true
	case token.Minus:
		return ast.Sub, true
	default:
		return 0, false
	}
}

// tryParsePrimary implements:
// primary := ident ('(' args ')')?   # symbol or call
//          | intlit
//          | 'match' '(' expr ')' '{' (expr '=>' expr ',')* '}'
//          | block
func (p *Parser) tryParsePrimary() (ast.Expr, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		name := p.lx.Next()
		if p.lx.Peek().Kind == token.LeftParen {
			return p.parseCallExpr(name), true
		}
		return &ast.Symbol{Name: name.Text, Loc: name.Span}, true
	case token.IntLit:
		lit := p.lx.Next()
		return &ast.IntegerLiteral{Value: lit.IntValue, Loc: lit.Span}, true
	case token.KwMatch:
		return p.parseMatchExpr(), true
	case token.LeftBrace:
		return p.parseBlock(), true
	default:
		return nil, false
	}
}

// parseCallExpr implements: ident '(' args ')', with
// args := (expr (',' | &')'))*.
func (p *Parser) parseCallExpr(name token.Token) ast.Expr {
	p.expect(token.LeftParen)
	call := &ast.CallExpr{Callee: name.Text, CalleeSpan: name.Span, Loc: name.Span}
	for p.lx.Peek().Kind != token.RightParen {
		call.Args = append(call.Args, p.parseExpr())
		p.consume(token.Comma)
	}
	closeTok := p.expect(token.RightParen)
	call.Loc = call.Loc.Cover(closeTok.Span)
	return call
}

// parseMatchExpr implements:
// 'match' '(' expr ')' '{' (expr '=>' expr ',')* '}'.
func (p *Parser) parseMatchExpr() ast.Expr {
	matchTok := p.expect(token.KwMatch)
	p.expect(token.LeftParen)
	matchee := p.parseExpr()
	p.expect(token.RightParen)
	p.expect(token.LeftBrace)

	match := &ast.MatchExpr{Matchee: matchee, Loc: matchTok.Span}
	for p.lx.Peek().Kind != token.RightBrace {
		lhs := p.parseExpr()
		p.expect(token.Arrow)
		rhs := p.parseExpr()
		match.Arms = append(match.Arms, ast.MatchArm{LHS: lhs, RHS: rhs})
		p.expect(token.Comma)
	}
	closeTok := p.expect(token.RightBrace)
	match.Loc = match.Loc.Cover(closeTok.Span)
	return match
}
