// Package transcribe implements the longest-match transcription matcher
// spec.md §4.5 specifies: splitting an IPA-like pronunciation string into a
// sequence of declared phonemes.
package transcribe

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/conlangtools/chronlang-engine/internal/phon"
)

// Match is one accepted segment of the input.
type Match struct {
	Offset  int
	Length  int
	Phoneme *phon.Phoneme
}

// Result is the outcome of MatchPhonemes: either a complete segmentation,
// or the offset/remainder of the first unmatched character.
type Result struct {
	OK      bool
	Matches []Match
	Offset  int
	Rest    string
	Message string
}

// SortInventory orders phonemes by (glyph length descending, Index
// ascending) — the contract MatchPhonemes depends on (spec.md §4.5, §9).
// internal/module re-sorts the current inventory for each word it
// transcribes.
func SortInventory(phonemes []*phon.Phoneme) []*phon.Phoneme {
	out := make([]*phon.Phoneme, len(phonemes))
	copy(out, phonemes)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := len([]rune(out[i].Glyph)), len([]rune(out[j].Glyph))
		if li != lj {
			return li > lj
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// MatchPhonemes greedily segments text into the longest matching phonemes
// from sorted, which must already be in SortInventory order. The input is
// first normalized to Unicode NFC so pre-composed and decomposed spellings
// of the same IPA string match identical declared glyphs (an addition
// beyond spec.md's algorithm, not a change to it: normalization happens
// once, up front, and the scan itself is exactly the greedy longest-match
// spec.md §4.5 describes).
func MatchPhonemes(text string, sorted []*phon.Phoneme) Result {
	text = norm.NFC.String(text)

	var matches []Match
	offset := 0
	rest := text

	for rest != "" {
		accepted := false
		for _, p := range sorted {
			if p.Glyph == "" {
				continue
			}
			if strings.HasPrefix(rest, p.Glyph) {
				matches = append(matches, Match{Offset: offset, Length: len(p.Glyph), Phoneme: p})
				offset += len(p.Glyph)
				rest = rest[len(p.Glyph):]
				accepted = true
				break
			}
		}
		if !accepted {
			return Result{
				OK:      false,
				Offset:  offset,
				Rest:    rest,
				Message: "unmatched input at offset " + strconv.Itoa(offset),
			}
		}
	}

	return Result{OK: true, Matches: matches}
}
