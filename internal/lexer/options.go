package lexer

import (
	"kdc/internal/source"
)

// Reporter is a thin interface so the lexer does not need to depend on the
// diag package; the formatting of diagnostics happens in the outer layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	Reporter Reporter // may be nil, in which case errors are ignored
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
