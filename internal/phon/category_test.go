package phon

import "testing"

func buildVoicingTrait() (*Trait, *Feature, *Feature) {
	voiced := &Feature{Labels: []Label{{Text: "voiced"}}}
	voiceless := &Feature{Labels: []Label{{Text: "voiceless"}}}
	trait := &Trait{Name: "Voicing", Features: []*Feature{voiceless, voiced}, Default: voiceless}
	voiced.Trait = trait
	voiceless.Trait = trait
	return trait, voiced, voiceless
}

func TestModifierPositiveAndNegativeAreComplementary(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	class := &Class{Name: "C", Encodes: []*Trait{trait}}
	p := &Phoneme{Glyph: "b", Class: class, Features: map[*Trait]*Feature{trait: voiced}}
	q := &Phoneme{Glyph: "p", Class: class, Features: map[*Trait]*Feature{trait: voiceless}}

	positive := Modifier{Feature: voiced, Sign: Positive}
	negative := Modifier{Feature: voiced, Sign: Negative}

	if !positive.Matches(p) || negative.Matches(p) {
		t.Fatalf("expected voiced phoneme to match [+voiced] and not [-voiced]")
	}
	if positive.Matches(q) || !negative.Matches(q) {
		t.Fatalf("expected voiceless phoneme to match [-voiced] and not [+voiced]")
	}
}

func TestCategoryMatchesBasePlusModifiers(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	class := &Class{Name: "C", Encodes: []*Trait{trait}}
	b := &Phoneme{Glyph: "b", Class: class, Features: map[*Trait]*Feature{trait: voiced}}
	p := &Phoneme{Glyph: "p", Class: class, Features: map[*Trait]*Feature{trait: voiceless}}
	class.Phonemes = []*Phoneme{b, p}

	cat := &Category{BaseClass: class, Modifiers: []Modifier{{Feature: voiced, Sign: Positive}}}

	if !cat.Matches(b) {
		t.Fatalf("expected voiced class member to match category")
	}
	if cat.Matches(p) {
		t.Fatalf("expected voiceless class member not to match [C+voiced]")
	}
}

func TestSeriesListMembership(t *testing.T) {
	class := &Class{Name: "C"}
	a := &Phoneme{Glyph: "a", Class: class}
	e := &Phoneme{Glyph: "e", Class: class}
	i := &Phoneme{Glyph: "i", Class: class}
	series := &Series{Name: "F", Kind: SeriesList, List: []*Phoneme{a, e}}

	if !series.Contains(a) || !series.Contains(e) {
		t.Fatalf("expected listed phonemes to be contained")
	}
	if series.Contains(i) {
		t.Fatalf("expected unlisted phoneme to be excluded")
	}
}

func TestSeriesCategoryDelegates(t *testing.T) {
	trait, voiced, _ := buildVoicingTrait()
	class := &Class{Name: "C", Encodes: []*Trait{trait}}
	b := &Phoneme{Glyph: "b", Class: class, Features: map[*Trait]*Feature{trait: voiced}}
	class.Phonemes = []*Phoneme{b}

	series := &Series{Name: "Voiced", Kind: SeriesCategory, Category: &Category{BaseClass: class, Modifiers: []Modifier{{Feature: voiced, Sign: Positive}}}}

	if !series.Contains(b) {
		t.Fatalf("expected category series to delegate to its category")
	}
}
