package diag

import (
	"catlint/internal/source"
)

// Note attaches secondary context to a finding (e.g. the span of another
// occurrence of the same entry).
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one parse warning or catalog finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
