package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
)

func compileLanguage(m *Module, stmt ast.Language) {
	if prev, exists := m.Languages[stmt.ID.Value]; exists {
		diag.ReportError(m.errReporter(), diag.DupLanguageID, stmt.ID.Span,
			fmt.Sprintf("language %q is already declared", stmt.ID.Value),
			diag.Note{Span: prev.Span, Msg: "previous declaration here"})
		return
	}

	lang := &langtree.Language{ID: stmt.ID.Value, Span: stmt.Span}

	if stmt.Parent != nil {
		parent, ok := m.Languages[stmt.Parent.Value]
		if !ok {
			diag.ReportError(m.errReporter(), diag.RefUnknownLanguage, stmt.Parent.Span,
				fmt.Sprintf("unknown parent language %q", stmt.Parent.Value))
		} else {
			lang.Parent = parent
		}
	}
	if stmt.Name != nil {
		lang.Name = stmt.Name.Value
	}

	m.Languages[lang.ID] = lang
}

// compileMilestone implements spec.md §4.6: a milestone statement sets the
// driver's current language and/or time window, and — once both are known
// — materializes and records a Milestone on both the module and the
// language it names.
func compileMilestone(m *Module, st *compileState, stmt ast.Milestone) {
	if stmt.Time != nil {
		t := stmt.Time.Value
		switch t.Kind {
		case ast.TimeInstant:
			st.tagStart, st.tagEnd = t.Start, langtree.EndOfTime
		case ast.TimeRange:
			if t.Start >= t.End {
				diag.ReportError(m.errReporter(), diag.ShapeBadMilestone, stmt.Time.Span,
					"milestone range start must be before its end")
			}
			st.tagStart, st.tagEnd = t.Start, t.End
		}
		st.timeSet = true
	}

	if stmt.Language != nil {
		lang, ok := m.Languages[stmt.Language.Value]
		if !ok {
			diag.ReportError(m.errReporter(), diag.RefUnknownLanguage, stmt.Language.Span,
				fmt.Sprintf("unknown language %q", stmt.Language.Value))
		} else {
			st.currentLanguage = lang
		}
	} else if len(m.Milestones) == 0 && st.currentLanguage == nil {
		diag.ReportError(m.errReporter(), diag.CtxNoLanguage, stmt.Span,
			"the first milestone in a module must set a language")
	}

	if !st.canMaterializeTag() {
		return
	}

	ms := &langtree.Milestone{Starts: st.tagStart, Ends: st.tagEnd, Language: st.currentLanguage, Span: stmt.Span}
	m.Milestones = langtree.AppendDedup(m.Milestones, ms)
	st.currentLanguage.Milestones = langtree.AppendDedup(st.currentLanguage.Milestones, ms)
}
