package transcribe

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/phon"
)

func inventory() []*phon.Phoneme {
	return []*phon.Phoneme{
		{Glyph: "e", Index: 0},
		{Glyph: "k", Index: 1},
		{Glyph: "t", Index: 2},
		{Glyph: "tʃ", Index: 3},
		{Glyph: "ʃ", Index: 4},
	}
}

func TestMatchPhonemesLongestMatchWins(t *testing.T) {
	sorted := SortInventory(inventory())
	res := MatchPhonemes("etʃ", sorted)
	if !res.OK {
		t.Fatalf("expected match, got failure: %s", res.Message)
	}
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches (e, tʃ), got %d", len(res.Matches))
	}
	if res.Matches[1].Phoneme.Glyph != "tʃ" {
		t.Fatalf("expected longest match tʃ over t, got %q", res.Matches[1].Phoneme.Glyph)
	}
}

func TestMatchPhonemesReportsFirstUnmatchedOffset(t *testing.T) {
	sorted := SortInventory(inventory())
	res := MatchPhonemes("ex", sorted)
	if res.OK {
		t.Fatalf("expected failure on unmatched input")
	}
	if res.Offset != 1 || res.Rest != "x" {
		t.Fatalf("expected offset 1 rest %q, got offset %d rest %q", "x", res.Offset, res.Rest)
	}
}

func TestMatchPhonemesEmptyInputSucceeds(t *testing.T) {
	res := MatchPhonemes("", SortInventory(inventory()))
	if !res.OK || len(res.Matches) != 0 {
		t.Fatalf("expected trivial success on empty input")
	}
}

func TestSortInventoryOrdersByLengthThenIndex(t *testing.T) {
	sorted := SortInventory(inventory())
	if sorted[0].Glyph != "tʃ" {
		t.Fatalf("expected the two-rune glyph first, got %q", sorted[0].Glyph)
	}
	for i := 1; i < len(sorted); i++ {
		if len([]rune(sorted[i-1].Glyph)) < len([]rune(sorted[i].Glyph)) {
			t.Fatalf("inventory not sorted by descending length at %d", i)
		}
	}
}
