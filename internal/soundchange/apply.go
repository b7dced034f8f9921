package soundchange

import (
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
)

// Applies reports whether c's tag overlaps w's tag (spec.md §4.4.2): a
// change only ever touches words alive during its own time window.
func Applies(c *Change, w *lexicon.Word) bool {
	return langtree.TagsOverlap(c.Tag, w.Tag)
}

// ApplyIfApplicable implements spec.md §4.4.2-§4.4.7: if c applies to w,
// every non-overlapping match of c's source (subject to c's environment)
// is rewritten left to right and the resulting Word is returned with an
// etymology step recording c. If c does not apply, or no candidate range
// survives environment filtering, w is returned unchanged and the second
// result is false.
//
// Candidate ranges are walked in ascending Start order; a range whose
// Start falls before the end of the last range actually rewritten is
// skipped rather than re-scanned against the already-replaced phonemes
// (spec.md §9's open question on overlap, resolved in DESIGN.md).
func ApplyIfApplicable(c *Change, w *lexicon.Word, reporter diag.Reporter) (*lexicon.Word, bool) {
	if !Applies(c, w) {
		return w, false
	}

	candidates := findSourceMatches(c.Source, w.Phonemes)
	if len(candidates) == 0 {
		return w, false
	}

	var kept []Range
	lastEnd := -1
	for _, r := range candidates {
		if r.Start < lastEnd {
			continue
		}
		if !testEnvironment(c.Environment, w.Phonemes, r) {
			continue
		}
		kept = append(kept, r)
		lastEnd = r.End
	}
	if len(kept) == 0 {
		return w, false
	}

	out := make([]*phon.Phoneme, 0, len(w.Phonemes))
	cursor := 0
	for _, r := range kept {
		out = append(out, w.Phonemes[cursor:r.Start]...)
		out = append(out, resolveTarget(c, w.Phonemes[r.Start:r.End], reporter)...)
		cursor = r.End
	}
	out = append(out, w.Phonemes[cursor:]...)

	next := w.WithPhonemes(out, lexicon.EtymologyStep{Predecessor: w, Change: c})
	return next, true
}
