package soundchange

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
)

func buildStop(t *testing.T) (*phon.Class, *phon.Trait, *phon.Feature, *phon.Feature) {
	t.Helper()
	place := &phon.Trait{Name: "Place"}
	velar := &phon.Feature{Labels: []phon.Label{{Text: "velar"}}, Trait: place}
	palatal := &phon.Feature{Labels: []phon.Label{{Text: "palatal"}}, Trait: place}
	place.Features = []*phon.Feature{velar, palatal}
	place.Default = velar
	return &phon.Class{Name: "Stop", Encodes: []*phon.Trait{place}}, place, velar, palatal
}

func tagged(lang *langtree.Language, start, end int64, idx int) langtree.Tag {
	return langtree.Tag{Start: start, End: end, Language: lang, Index: idx}
}

// TestApplyLiteralReplacement covers spec.md §8 S2: /k/ > /ʃ/ unconditionally.
func TestApplyLiteralReplacement(t *testing.T) {
	class := &phon.Class{Name: "C"}
	k := &phon.Phoneme{Glyph: "k", Class: class}
	sh := &phon.Phoneme{Glyph: "ʃ", Class: class}
	class.Phonemes = []*phon.Phoneme{k, sh}

	lang := &langtree.Language{ID: "proto"}
	wordTag := tagged(lang, 0, 100, 0)
	w := &lexicon.Word{Gloss: "sky", Phonemes: []*phon.Phoneme{k, k}, Tag: wordTag}

	c := &Change{
		Source:      Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: k}}},
		Target:      Target{Kind: TargetPhonemes, Phonemes: []*phon.Phoneme{sh}},
		Description: "k > ʃ",
		Tag:         tagged(lang, 0, 100, 1),
	}

	next, changed := ApplyIfApplicable(c, w, diag.BagReporter{Bag: diag.NewBag()})
	if !changed {
		t.Fatalf("expected change to apply")
	}
	if next.Render() != "ʃʃ" {
		t.Fatalf("expected both /k/ rewritten, got %q", next.Render())
	}
	if w.Render() != "kk" {
		t.Fatalf("expected original word untouched, got %q", w.Render())
	}
}

// TestApplyChainOfRulesInOrder covers spec.md §8 S4: two rules tagged with
// increasing Start apply in sequence, each seeing the previous rule's output.
func TestApplyChainOfRulesInOrder(t *testing.T) {
	class := &phon.Class{Name: "C"}
	p := &phon.Phoneme{Glyph: "p", Class: class}
	f := &phon.Phoneme{Glyph: "f", Class: class}
	h := &phon.Phoneme{Glyph: "h", Class: class}
	class.Phonemes = []*phon.Phoneme{p, f, h}

	lang := &langtree.Language{ID: "proto"}
	w := &lexicon.Word{Gloss: "father", Phonemes: []*phon.Phoneme{p}, Tag: tagged(lang, 0, 1000, 0)}

	rule1 := &Change{
		Source: Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetPhonemes, Phonemes: []*phon.Phoneme{f}},
		Tag:    tagged(lang, 100, 1000, 1),
	}
	rule2 := &Change{
		Source: Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: f}}},
		Target: Target{Kind: TargetPhonemes, Phonemes: []*phon.Phoneme{h}},
		Tag:    tagged(lang, 200, 1000, 2),
	}

	reporter := diag.BagReporter{Bag: diag.NewBag()}
	afterFirst, changed1 := ApplyIfApplicable(rule1, w, reporter)
	if !changed1 || afterFirst.Render() != "f" {
		t.Fatalf("expected first rule to produce f, got %q (changed=%v)", afterFirst.Render(), changed1)
	}
	afterSecond, changed2 := ApplyIfApplicable(rule2, afterFirst, reporter)
	if !changed2 || afterSecond.Render() != "h" {
		t.Fatalf("expected second rule to produce h, got %q (changed=%v)", afterSecond.Render(), changed2)
	}
	if len(afterSecond.Etymology) != 2 {
		t.Fatalf("expected two etymology steps, got %d", len(afterSecond.Etymology))
	}
}

// TestApplyEnvironmentAnchoredDeletion covers spec.md §8 S5: delete a final
// vowel, anchored to word end.
func TestApplyEnvironmentAnchoredDeletion(t *testing.T) {
	class := &phon.Class{Name: "C"}
	a := &phon.Phoneme{Glyph: "a", Class: class}
	k := &phon.Phoneme{Glyph: "k", Class: class}
	class.Phonemes = []*phon.Phoneme{a, k}

	lang := &langtree.Language{ID: "proto"}
	w := &lexicon.Word{Gloss: "dog", Phonemes: []*phon.Phoneme{k, a, k, a}, Tag: tagged(lang, 0, 100, 0)}

	c := &Change{
		Source:      Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: a}}},
		Target:      Target{Kind: TargetEmpty},
		Environment: &Environment{AnchorEnd: true},
		Tag:         tagged(lang, 0, 100, 1),
	}

	next, changed := ApplyIfApplicable(c, w, diag.BagReporter{Bag: diag.NewBag()})
	if !changed {
		t.Fatalf("expected final vowel deletion to apply")
	}
	if next.Render() != "kak" {
		t.Fatalf("expected only the word-final /a/ deleted, got %q", next.Render())
	}
}

// TestApplyFeatureModificationResolvesToClassMember covers spec.md §8 S6:
// [+palatal] resolves /k/ (velar) to the class member sharing every other
// feature but Place=palatal.
func TestApplyFeatureModificationResolvesToClassMember(t *testing.T) {
	class, place, _, palatal := buildStop(t)
	k := &phon.Phoneme{Glyph: "k", Class: class, Features: map[*phon.Trait]*phon.Feature{place: place.Default}}
	c := &phon.Phoneme{Glyph: "c", Class: class, Features: map[*phon.Trait]*phon.Feature{place: palatal}}
	class.Phonemes = []*phon.Phoneme{k, c}

	lang := &langtree.Language{ID: "proto"}
	w := &lexicon.Word{Gloss: "sky", Phonemes: []*phon.Phoneme{k}, Tag: tagged(lang, 0, 100, 0)}

	mod := &Change{
		Source: Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: k}}},
		Target: Target{Kind: TargetModification, Modifiers: []phon.Modifier{{Feature: palatal, Sign: phon.Positive}}},
		Tag:    tagged(lang, 0, 100, 1),
	}

	bag := diag.NewBag()
	next, changed := ApplyIfApplicable(mod, w, diag.BagReporter{Bag: bag})
	if !changed {
		t.Fatalf("expected feature modification to apply")
	}
	if len(next.Phonemes) != 1 || next.Phonemes[0] != c {
		t.Fatalf("expected /k/ resolved to palatal class member /c/, got %q", next.Render())
	}
	if bag.Len() != 0 {
		t.Fatalf("expected no warnings when a matching phoneme exists, got %d", bag.Len())
	}
}

// TestApplyFeatureModificationWarnsWhenNoMatch covers spec.md §4.4.6/§4.4.7:
// a modification with no matching class member warns and retains the
// original phoneme.
func TestApplyFeatureModificationWarnsWhenNoMatch(t *testing.T) {
	class, place, velar, palatal := buildStop(t)
	k := &phon.Phoneme{Glyph: "k", Class: class, Features: map[*phon.Trait]*phon.Feature{place: velar}}
	class.Phonemes = []*phon.Phoneme{k}

	lang := &langtree.Language{ID: "proto"}
	w := &lexicon.Word{Gloss: "sky", Phonemes: []*phon.Phoneme{k}, Tag: tagged(lang, 0, 100, 0)}

	mod := &Change{
		Source: Source{Kind: SourcePattern, Pattern: []Segment{{Phoneme: k}}},
		Target: Target{Kind: TargetModification, Modifiers: []phon.Modifier{{Feature: palatal, Sign: phon.Positive}}},
		Tag:    tagged(lang, 0, 100, 1),
	}

	bag := diag.NewBag()
	next, changed := ApplyIfApplicable(mod, w, diag.BagReporter{Bag: bag})
	if !changed {
		t.Fatalf("expected the rewrite step to run even though no phoneme matched")
	}
	if next.Phonemes[0] != k {
		t.Fatalf("expected original phoneme retained when no class member matches")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one warning, got %d", bag.Len())
	}
}

func TestAppliesRespectsTagOverlap(t *testing.T) {
	lang := &langtree.Language{ID: "proto"}
	w := &lexicon.Word{Tag: tagged(lang, 0, 100, 0)}
	c := &Change{Tag: tagged(lang, 100, 200, 1)}
	if Applies(c, w) {
		t.Fatalf("expected non-overlapping half-open windows not to apply")
	}
}
