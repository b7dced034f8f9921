package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

// compileSoundChange implements spec.md §4.4: a rewrite rule tagged to the
// language and time window the enclosing milestone established.
func compileSoundChange(m *Module, st *compileState, stmt ast.SoundChange) {
	if st.currentLanguage == nil {
		diag.ReportError(m.errReporter(), diag.CtxNoLanguage, stmt.Span,
			"a sound change cannot be declared before a milestone sets a language")
		return
	}
	if !st.timeSet {
		diag.ReportError(m.errReporter(), diag.CtxNoMilestone, stmt.Span,
			"a sound change cannot be declared before a milestone sets a time")
		return
	}

	change := &soundchange.Change{
		Source:         compileSource(m, stmt.Source.Value),
		Target:         compileTarget(m, stmt.Target.Value),
		Tag:            st.materializeTag(),
		DefinitionSite: stmt.Span,
	}
	if stmt.Environment != nil {
		env := compileEnvironment(m, stmt.Environment.Value)
		change.Environment = &env
	}
	if stmt.Description != nil {
		change.Description = stmt.Description.Value
	}

	m.SoundChanges = append(m.SoundChanges, change)
}

func compileSource(m *Module, src ast.Source) soundchange.Source {
	if src.Kind == ast.SourceEmpty {
		return soundchange.Source{Kind: soundchange.SourceEmpty}
	}
	out := soundchange.Source{Kind: soundchange.SourcePattern}
	for _, seg := range src.Pattern {
		if s, ok := compileSegment(m, seg); ok {
			out.Pattern = append(out.Pattern, s)
		}
	}
	return out
}

// compileSegment resolves a literal phoneme reference or a category
// predicate. A syllable-boundary marker is dropped (spec.md §4.4.1, §9):
// it never reaches internal/soundchange.
func compileSegment(m *Module, seg ast.Segment) (soundchange.Segment, bool) {
	switch seg.Kind {
	case ast.SegmentPhoneme:
		p, ok := m.phonemesByGlyph[seg.Phoneme.Value]
		if !ok {
			diag.ReportError(m.errReporter(), diag.RefUnknownPhoneme, seg.Phoneme.Span,
				fmt.Sprintf("unknown phoneme %q", seg.Phoneme.Value))
			return soundchange.Segment{}, false
		}
		return soundchange.Segment{Phoneme: p}, true
	case ast.SegmentCategory:
		return soundchange.Segment{Category: compileCategory(m, seg.Category)}, true
	default:
		return soundchange.Segment{}, false
	}
}

func compileTarget(m *Module, tgt ast.Target) soundchange.Target {
	switch tgt.Kind {
	case ast.TargetPhonemes:
		out := soundchange.Target{Kind: soundchange.TargetPhonemes}
		for _, ref := range tgt.Phonemes {
			p, ok := m.phonemesByGlyph[ref.Value]
			if !ok {
				diag.ReportError(m.errReporter(), diag.RefUnknownPhoneme, ref.Span,
					fmt.Sprintf("unknown phoneme %q", ref.Value))
				continue
			}
			out.Phonemes = append(out.Phonemes, p)
		}
		return out
	case ast.TargetModification:
		out := soundchange.Target{Kind: soundchange.TargetModification}
		for _, mod := range tgt.Modifiers {
			feature, ok := m.resolveFeatureLabel(mod.Feature.Value)
			if !ok {
				diag.ReportError(m.errReporter(), diag.RefUnknownFeature, mod.Feature.Span,
					fmt.Sprintf("unknown feature %q", mod.Feature.Value))
				continue
			}
			sign := phon.Positive
			if mod.Sign == ast.Negative {
				sign = phon.Negative
			}
			out.Modifiers = append(out.Modifiers, phon.Modifier{Feature: feature, Sign: sign})
		}
		return out
	default:
		return soundchange.Target{Kind: soundchange.TargetEmpty}
	}
}

func compileEnvironment(m *Module, env ast.Environment) soundchange.Environment {
	out := soundchange.Environment{AnchorStart: env.AnchorStart, AnchorEnd: env.AnchorEnd}
	for _, seg := range env.Before {
		if s, ok := compileSegment(m, seg); ok {
			out.Before = append(out.Before, s)
		}
	}
	for _, seg := range env.After {
		if s, ok := compileSegment(m, seg); ok {
			out.After = append(out.After, s)
		}
	}
	return out
}
