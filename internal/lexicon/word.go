// Package lexicon holds the lexical entry model spec.md §3 describes:
// words with gloss, phoneme sequence, definitions, and an etymology chain
// that accumulates as sound changes rewrite a word.
package lexicon

import (
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

// Definition is one gloss entry. PosSpan and DefinitionSpan are tracked
// independently (ported from original_source/word.rs's Definition, which
// spans each field on its own) so a malformed definition can be pointed at
// precisely rather than blaming the whole word.
type Definition struct {
	PartOfSpeech   string
	PosSpan        source.Span
	Text           string
	DefinitionSpan source.Span
}

// Change is the interface a sound change satisfies so internal/lexicon can
// record it in an etymology chain without importing internal/soundchange
// (which itself imports internal/lexicon in order to rewrite words).
// *soundchange.Change implements this.
type Change interface {
	Describe() string
	TagValue() langtree.Tag
}

// EtymologyStep records one sound change's effect on a word's ancestry:
// the word immediately before the change was applied, and the change
// itself.
type EtymologyStep struct {
	Predecessor *Word
	Change      Change
}

// Word is an immutable lexical entry. Applying a sound change never
// mutates a Word; internal/soundchange produces a new Word whose
// Etymology appends the prior word and the change (spec.md §3).
type Word struct {
	Gloss             string
	GlossSpan         source.Span
	Phonemes          []*phon.Phoneme
	PronunciationSpan source.Span
	Definitions       []Definition
	Tag               langtree.Tag
	DefinitionSite    source.Span
	Etymology         []EtymologyStep
}

// Render renders the word's current phoneme sequence back to its glyphs,
// concatenated — the inverse of transcription (spec.md §8 property 4,
// "transcription round-trip").
func (w *Word) Render() string {
	out := make([]byte, 0, len(w.Phonemes)*2)
	for _, p := range w.Phonemes {
		out = append(out, p.Glyph...)
	}
	return string(out)
}

// WithPhonemes returns a new Word with Phonemes replaced and step appended
// to the etymology chain, leaving w untouched (spec.md §8 property 5,
// "sound change immutability").
func (w *Word) WithPhonemes(phonemes []*phon.Phoneme, step EtymologyStep) *Word {
	next := *w
	next.Phonemes = phonemes
	next.Etymology = append(append([]EtymologyStep{}, w.Etymology...), step)
	return &next
}
