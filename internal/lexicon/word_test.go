package lexicon

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/phon"
)

func TestWordRenderConcatenatesGlyphs(t *testing.T) {
	w := &Word{Gloss: "I", Phonemes: []*phon.Phoneme{{Glyph: "e"}, {Glyph: "k"}}}
	if got := w.Render(); got != "ek" {
		t.Fatalf("expected %q, got %q", "ek", got)
	}
}

func TestWithPhonemesLeavesOriginalUntouched(t *testing.T) {
	k := &phon.Phoneme{Glyph: "k"}
	sh := &phon.Phoneme{Glyph: "ʃ"}
	original := &Word{Gloss: "I", Phonemes: []*phon.Phoneme{{Glyph: "e"}, k}}

	next := original.WithPhonemes([]*phon.Phoneme{{Glyph: "e"}, sh}, EtymologyStep{Predecessor: original})

	if original.Render() != "ek" {
		t.Fatalf("expected original word unchanged, got %q", original.Render())
	}
	if next.Render() != "eʃ" {
		t.Fatalf("expected rewritten word, got %q", next.Render())
	}
	if len(next.Etymology) != 1 || next.Etymology[0].Predecessor != original {
		t.Fatalf("expected etymology to record the predecessor")
	}
}
