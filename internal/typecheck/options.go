package typecheck

import "kdc/internal/source"

// Note is a secondary annotation attached to a diagnostic, e.g. pointing at
// a parameter's declared type or the expression that constrained a cast.
type Note struct {
	Span source.Span
	Msg  string
}

// Reporter is a thin interface so this package does not need to depend on
// the diag package directly; formatting happens in the outer layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string, notes ...Note)
}
