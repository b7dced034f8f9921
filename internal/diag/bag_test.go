package diag

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/source"
)

func span(source_ string, offset int) source.Span {
	return source.Span{Source: source_, Start: source.Position{Offset: offset}, End: source.Position{Offset: offset + 1}}
}

func TestBagSortIsStableByPositionThenSeverity(t *testing.T) {
	b := NewBag()
	b.Add(NewWarning(TransUnmatched, span("a", 5), "warn at 5"))
	b.Add(NewError(RefUnknownPhoneme, span("a", 5), "error at 5"))
	b.Add(NewError(RefUnknownClass, span("a", 1), "error at 1"))

	b.Sort()

	got := b.Items()
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].Message != "error at 1" {
		t.Fatalf("expected earliest offset first, got %q", got[0].Message)
	}
	if got[1].Message != "error at 5" || got[1].Severity != SevError {
		t.Fatalf("expected error before warning at same offset, got %+v", got[1])
	}
	if got[2].Message != "warn at 5" {
		t.Fatalf("expected warning last, got %+v", got[2])
	}
}

func TestBagDedupDropsExactRepeats(t *testing.T) {
	b := NewBag()
	d := NewError(DupWordGloss, span("a", 0), "duplicate gloss")
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected dedup to collapse identical diagnostics, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag()
	b.Add(NewWarning(TransUnmatched, span("a", 0), "warn"))
	if b.HasErrors() {
		t.Fatalf("expected no errors yet")
	}
	b.Add(NewError(RefUnknownTrait, span("a", 0), "err"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors once an error is added")
	}
}
