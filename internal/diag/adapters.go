package diag

import (
	"strings"

	"kdc/internal/astlower"
	"kdc/internal/source"
	"kdc/internal/typecheck"
)

// AstLowerReport satisfies astlower.Reporter, whose notes are typed
// astlower.Note.
type AstLowerReport struct {
	*Emitter
}

func (r AstLowerReport) Report(kind string, span source.Span, msg string, notes ...astlower.Note) {
	code := NameUndeclared
	if strings.HasPrefix(msg, "attempted redeclaration") {
		code = NameRedeclared
	}
	r.Emit(Diagnostic{Severity: severityOf(kind), Code: code, Primary: span, Message: msg, Notes: convertNotes(notes)})
}

func convertNotes(notes []astlower.Note) []Note {
	if len(notes) == 0 {
		return nil
	}
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = Note{Span: n.Span, Msg: n.Msg}
	}
	return out
}

// TypecheckReport satisfies typecheck.Reporter, whose notes are typed
// typecheck.Note.
type TypecheckReport struct {
	*Emitter
}

func (r TypecheckReport) Report(kind string, span source.Span, msg string, notes ...typecheck.Note) {
	code := TypeMismatch
	if strings.HasPrefix(msg, "implicit truncation") {
		code = TypeTruncation
	}
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = Note{Span: n.Span, Msg: n.Msg}
	}
	r.Emit(Diagnostic{Severity: severityOf(kind), Code: code, Primary: span, Message: msg, Notes: out})
}
