package diag

import "github.com/conlangtools/chronlang-engine/internal/source"

// Note attaches secondary context to a Diagnostic (e.g. "previous
// declaration here").
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the uniform record produced by every compiler phase. It
// matches the plain-record shape spec.md §6 specifies for errors:
// { message, span, sourceSpan? } — when an import re-emits an inner
// module's diagnostic, Primary keeps the inner span and the import
// statement's span is appended as a Note.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
