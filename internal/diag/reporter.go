package diag

import "github.com/conlangtools/chronlang-engine/internal/source"

// Reporter decouples diagnostic producers (the compiler driver, the
// sound-change rewrite engine) from storage. BagReporter is the only
// implementation this module needs; the indirection exists so tests can
// substitute a reporter that fails loudly on unexpected diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter appends every reported diagnostic to Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportError is a shortcut used throughout internal/module.
func ReportError(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg, Notes: notes})
}

// ReportWarning is the shortcut used by the sound-change rewrite engine for
// unresolvable feature modifications (spec.md §4.4.6, §4.4.7).
func ReportWarning(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Severity: SevWarning, Code: code, Primary: primary, Message: msg, Notes: notes})
}
