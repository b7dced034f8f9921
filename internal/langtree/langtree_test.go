package langtree

import "testing"

func TestIsAncestorWalksUpToTarget(t *testing.T) {
	on := &Language{ID: "ON"}
	ei := &Language{ID: "EI", Parent: on}
	ic := &Language{ID: "IC", Parent: ei}

	if !IsAncestor(ic, on) {
		t.Fatalf("expected IC to descend from ON")
	}
	if !IsAncestor(ic, ic) {
		t.Fatalf("expected reflexive ancestry")
	}
	if IsAncestor(on, ic) {
		t.Fatalf("ON does not descend from IC")
	}
}

func TestTagsOverlapIsHalfOpenExclusive(t *testing.T) {
	a := Tag{Start: 1000, End: 1500}
	touching := Tag{Start: 1500, End: 2000}
	overlapping := Tag{Start: 1400, End: 1600}

	if TagsOverlap(a, touching) {
		t.Fatalf("touching windows [1000,1500) and [1500,2000) must not overlap")
	}
	if !TagsOverlap(a, overlapping) {
		t.Fatalf("expected overlap for [1000,1500) and [1400,1600)")
	}
}

func TestSortByTagOrdersByStartThenIndex(t *testing.T) {
	tags := []Tag{
		{Start: 1500, Index: 2},
		{Start: 1000, Index: 1},
		{Start: 1500, Index: 0},
	}
	SortByTag(tags, func(tg Tag) Tag { return tg })

	if tags[0].Start != 1000 {
		t.Fatalf("expected earliest start first")
	}
	if tags[1].Index != 0 || tags[2].Index != 2 {
		t.Fatalf("expected ties on Start broken by ascending Index, got %+v", tags)
	}
}

func TestMilestoneDedupByIdentity(t *testing.T) {
	lang := &Language{ID: "ON"}
	var list []*Milestone
	m1 := &Milestone{Starts: 1000, Ends: EndOfTime, Language: lang}
	m2 := &Milestone{Starts: 1000, Ends: EndOfTime, Language: lang}
	m3 := &Milestone{Starts: 1200, Ends: EndOfTime, Language: lang}

	list = AppendDedup(list, m1)
	list = AppendDedup(list, m2)
	list = AppendDedup(list, m3)

	if len(list) != 2 {
		t.Fatalf("expected identity-based dedup to collapse m1/m2, got %d entries", len(list))
	}
}
