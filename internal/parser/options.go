package parser

import "kdc/internal/source"

// Reporter is a thin interface so the parser does not need to depend on the
// diag package; the formatting of diagnostics happens in the outer layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}
