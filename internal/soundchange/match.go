package soundchange

import "github.com/conlangtools/chronlang-engine/internal/phon"

// Range is a half-open match against a word's phoneme sequence: [Start, End).
type Range struct {
	Start int
	End   int
}

// findSourceMatches implements spec.md §4.4.4: given word phonemes P and a
// source of k segments, returns every candidate range. An empty source
// matches every gap (zero-width, one per position 0..len(P) inclusive);
// otherwise every k-length window that matches positionally. Matches may
// overlap at this stage — filtering happens in environment testing and
// final ordering happens in the rewrite step (spec.md §4.4.4, §9).
func findSourceMatches(src Source, phonemes []*phon.Phoneme) []Range {
	if src.Kind == SourceEmpty {
		ranges := make([]Range, 0, len(phonemes)+1)
		for i := 0; i <= len(phonemes); i++ {
			ranges = append(ranges, Range{Start: i, End: i})
		}
		return ranges
	}

	k := len(src.Pattern)
	if k == 0 || k > len(phonemes) {
		return nil
	}

	var ranges []Range
	for i := 0; i+k <= len(phonemes); i++ {
		if matchesWindow(src.Pattern, phonemes[i:i+k]) {
			ranges = append(ranges, Range{Start: i, End: i + k})
		}
	}
	return ranges
}

func matchesWindow(pattern []Segment, window []*phon.Phoneme) bool {
	for i, seg := range pattern {
		if !seg.Matches(window[i]) {
			return false
		}
	}
	return true
}
