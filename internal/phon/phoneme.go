package phon

import "github.com/conlangtools/chronlang-engine/internal/source"

// Phoneme is a reference-identified sound unit: a glyph, a total feature
// map over its class's encoded traits, and a module-wide declaration index
// (spec.md §3 — "Phoneme.index is strictly increasing across a Module's
// declared phonemes").
type Phoneme struct {
	Glyph    string
	Span     source.Span
	Features map[*Trait]*Feature
	Class    *Class
	Index    int
}

// FeatureFor returns the phoneme's feature for trait, if it specifies one.
func (p *Phoneme) FeatureFor(t *Trait) (*Feature, bool) {
	f, ok := p.Features[t]
	return f, ok
}

// SameFeatures reports whether p and other specify exactly the same
// trait->feature mapping (used by the sound-change rewrite engine to find
// a phoneme matching an edited feature map, spec.md §4.4.6).
func (p *Phoneme) SameFeatures(other map[*Trait]*Feature) bool {
	if len(p.Features) != len(other) {
		return false
	}
	for trait, feat := range p.Features {
		if other[trait] != feat {
			return false
		}
	}
	return true
}

// CloneFeatures returns a shallow copy of the phoneme's feature map, safe
// for the rewrite engine to mutate while searching for a replacement
// phoneme.
func (p *Phoneme) CloneFeatures() map[*Trait]*Feature {
	out := make(map[*Trait]*Feature, len(p.Features))
	for k, v := range p.Features {
		out[k] = v
	}
	return out
}
