// Package diagfmt renders diag.Diagnostic values as terminal-friendly
// text: a "path:line:col: error: message [code]" header, a source snippet with a
// caret under the primary span, then any notes.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"kdc/internal/diag"
	"kdc/internal/source"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	infoColor   = color.New(color.FgCyan, color.Bold)
	noteColor   = color.New(color.FgMagenta, color.Bold)
	pathColor   = color.New(color.Bold)
	caretColor  = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics as colorized (or plain) text, per PrettyOpts.
type Pretty struct {
	Opts PrettyOpts
}

// Print implements diag.Printer.
func (p Pretty) Print(w io.Writer, fs *source.FileSet, d diag.Diagnostic) {
	color.NoColor = !p.Opts.Color

	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s: %s: %s [%s]\n",
		pathColor.Sprint(p.location(file, start, fs.BaseDir())),
		p.severityLabel(d.Severity),
		d.Message,
		d.Code)

	if p.Opts.ShowPreview {
		p.printSnippet(w, file, start)
	}

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		nFile := fs.Get(n.Span.File)
		fmt.Fprintf(w, "  %s: %s: %s\n",
			noteColor.Sprint("note"),
			p.location(nFile, nStart, fs.BaseDir()),
			n.Msg)
		if p.Opts.ShowPreview {
			p.printSnippet(w, nFile, nStart)
		}
	}
}

func (p Pretty) location(f *source.File, pos source.LineCol, baseDir string) string {
	path := f.Path
	if p.Opts.PathMode != PathModeAbsolute {
		path = f.FormatPath(pathModeString(p.Opts.PathMode), baseDir)
	}
	return fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Col)
}

func pathModeString(m PathMode) string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

func (p Pretty) severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevWarning:
		return warnColor.Sprint("warning")
	case diag.SevInfo:
		return infoColor.Sprint("info")
	default:
		return errorColor.Sprint("error")
	}
}

func (p Pretty) printSnippet(w io.Writer, f *source.File, pos source.LineCol) {
	line := f.GetLine(pos.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)
	col := int(pos.Col)
	if col < 1 {
		col = 1
	}
	width := runewidth.StringWidth(line[:minInt(col-1, len(line))])
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", width), caretColor.Sprint("^"))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
