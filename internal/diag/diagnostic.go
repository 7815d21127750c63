package diag

import (
	"kdc/internal/source"
)

type Note struct {
	Span source.Span
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code Code
	Message string
	Primary source.Span
	Notes []Note
}
