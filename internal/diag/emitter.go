package diag

import (
	"errors"
	"io"
	"strings"

	"kdc/internal/source"
)

// ErrAborted marks a run that stopped after Emitter printed a diagnostic:
// the error itself carries no detail, since the diagnostic was already
// written to the Emitter's writer. Emit does not return it; the parser,
// astlower and typecheck stages each return their own ErrAborted.
var ErrAborted = errors.New("diag: aborted after diagnostic")

// Printer renders one diagnostic, e.g. diagfmt.Pretty.
type Printer interface {
	Print(w io.Writer, fs *source.FileSet, d Diagnostic)
}

// Emitter is the fail-fast Reporter every pipeline stage reports through:
// the first diagnostic is printed immediately and Aborted becomes true,
// rather than accumulating in a Bag for later sorting.
type Emitter struct {
	W        io.Writer
	FileSet  *source.FileSet
	Printer  Printer
	Aborted  bool
	Severity Severity // minimum severity that sets Aborted
}

// NewEmitter returns an Emitter that aborts on SevError and above.
func NewEmitter(w io.Writer, fs *source.FileSet, p Printer) *Emitter {
	return &Emitter{W: w, FileSet: fs, Printer: p, Severity: SevError}
}

func (e *Emitter) Emit(d Diagnostic) {
	if e.Printer != nil {
		e.Printer.Print(e.W, e.FileSet, d)
	}
	if d.Severity >= e.Severity {
		e.Aborted = true
	}
}

// Report satisfies diag.Reporter.
func (e *Emitter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	e.Emit(Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg, Notes: notes})
}

// StageReport satisfies lexer.Reporter and parser.Reporter, which report by
// a bare "error"/"warning" kind string rather than a diag.Code. Code picks
// the most specific code whose message prefix matches msg, falling back to
// fallback.
type StageReport struct {
	*Emitter
	Codes    map[string]Code
	Fallback Code
}

func (r StageReport) Report(kind string, span source.Span, msg string) {
	r.Emit(Diagnostic{Severity: severityOf(kind), Code: r.codeFor(msg), Primary: span, Message: msg})
}

func (r StageReport) codeFor(msg string) Code {
	best, bestLen := r.Fallback, -1
	for prefix, code := range r.Codes {
		if strings.HasPrefix(msg, prefix) && len(prefix) > bestLen {
			best, bestLen = code, len(prefix)
		}
	}
	return best
}

func severityOf(kind string) Severity {
	switch kind {
	case "warning":
		return SevWarning
	case "info":
		return SevInfo
	default:
		return SevError
	}
}
