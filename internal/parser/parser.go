// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into an owned AST.
//
// Parsing is fail-fast: the first malformed construct reports a diagnostic
// and aborts the parse. This is implemented with a single internal panic
// value caught at the Parse entry point, the same bailout-on-first-error
// shape used by the standard library's own recursive-descent parsers.
package parser

import (
	"errors"

	"kdc/internal/ast"
	"kdc/internal/lexer"
	"kdc/internal/source"
	"kdc/internal/token"
)

// ErrAborted is returned by Parse when a diagnostic was reported and parsing
// stopped before producing a complete tree.
var ErrAborted = errors.New("parser: aborted after diagnostic")

type bailout struct{}

// Parser consumes tokens from a Lexer and builds an *ast.Root.
type Parser struct {
	lx       *lexer.Lexer
	reporter Reporter
}

// New constructs a Parser reading from lx. reporter may be nil, in which
// case diagnostics are discarded but parsing still aborts.
func New(lx *lexer.Lexer, reporter Reporter) *Parser {
	return &Parser{lx: lx, reporter: reporter}
}

// Parse runs the grammar's root production: function*.
func (p *Parser) Parse() (root *ast.Root, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); ok {
				root, err = nil, ErrAborted
				return
			}
			panic(r)
		}
	}()
	return p.parseRoot(), nil
}

func (p *Parser) abort(sp source.Span, msg string) {
	if p.reporter != nil {
		p.reporter.Report("error", sp, msg)
	}
	panic(bailout{})
}

// consume advances and returns the lookahead token if it matches kind,
// otherwise it leaves the lookahead untouched and returns ok=false.
func (p *Parser) consume(kind token.Kind) (token.Token, bool) {
	if p.lx.Peek().Kind == kind {
		return p.lx.Next(), true
	}
	return token.Token{}, false
}

// expect advances and returns the next token, reporting "expected X but got
// Y" and aborting if it does not match kind.
func (p *Parser) expect(kind token.Kind) token.Token {
	next := p.lx.Next()
	if next.Kind != kind {
		p.abort(next.Span, "expected "+kind.String()+" but got "+next.Kind.String())
	}
	return next
}
