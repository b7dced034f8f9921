package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/source"
	"github.com/conlangtools/chronlang-engine/internal/transcribe"
)

// compileWord implements spec.md §3/§4.6: a word requires a materialized
// tag (a milestone must already have set both a language and a time), is
// transcribed against the module's current phoneme inventory, and is
// rejected outright (not merely warned about) on a transcription failure.
func compileWord(m *Module, st *compileState, stmt ast.Word) {
	if st.currentLanguage == nil {
		diag.ReportError(m.errReporter(), diag.CtxNoLanguage, stmt.Span,
			"a word cannot be declared before a milestone sets a language")
		return
	}
	if !st.timeSet {
		diag.ReportError(m.errReporter(), diag.CtxNoMilestone, stmt.Span,
			"a word cannot be declared before a milestone sets a time")
		return
	}

	gloss := stmt.Gloss.Value
	if prev, exists := m.Words[gloss]; exists {
		diag.ReportError(m.errReporter(), diag.DupWordGloss, stmt.Gloss.Span,
			fmt.Sprintf("word %q is already declared", gloss),
			diag.Note{Span: prev.GlossSpan, Msg: "previous declaration here"})
		return
	}

	phonemes, ok := transcribePronunciation(m, stmt.Pronunciation)
	if !ok {
		return
	}

	defs := make([]lexicon.Definition, 0, len(stmt.Definitions))
	for _, d := range stmt.Definitions {
		var pos string
		var posSpan source.Span
		if d.PartOfSpeech != nil {
			pos, posSpan = d.PartOfSpeech.Value, d.PartOfSpeech.Span
		}
		defs = append(defs, lexicon.Definition{
			PartOfSpeech:   pos,
			PosSpan:        posSpan,
			Text:           d.Text.Value,
			DefinitionSpan: d.Text.Span,
		})
	}

	m.Words[gloss] = &lexicon.Word{
		Gloss:             gloss,
		GlossSpan:         stmt.Gloss.Span,
		Phonemes:          phonemes,
		PronunciationSpan: stmt.Pronunciation.Span,
		Definitions:       defs,
		Tag:               st.materializeTag(),
		DefinitionSite:    stmt.Span,
	}
}

func transcribePronunciation(m *Module, pronunciation ast.Spanned[string]) ([]*phon.Phoneme, bool) {
	sorted := transcribe.SortInventory(m.ListPhonemes())
	result := transcribe.MatchPhonemes(pronunciation.Value, sorted)
	if !result.OK {
		diag.ReportError(m.errReporter(), diag.TransUnmatched, pronunciation.Span,
			fmt.Sprintf("%s: remaining input %q", result.Message, result.Rest))
		return nil, false
	}
	phonemes := make([]*phon.Phoneme, len(result.Matches))
	for i, match := range result.Matches {
		phonemes[i] = match.Phoneme
	}
	return phonemes, true
}
