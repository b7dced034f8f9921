package phon

// Sign is the polarity of a Modifier.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Modifier is one signed feature test within a Category (spec.md §3):
// phoneme p matches iff p.Features[m.Feature.Trait] == m.Feature when Sign
// is Positive, or the negation thereof when Sign is Negative.
type Modifier struct {
	Feature *Feature
	Sign    Sign
}

// Matches reports whether p satisfies this single modifier. A phoneme
// that doesn't specify a feature for the modifier's trait at all fails a
// Positive modifier and satisfies a Negative one (it certainly isn't the
// named feature).
func (m Modifier) Matches(p *Phoneme) bool {
	got, ok := p.FeatureFor(m.Feature.Trait)
	is := ok && got == m.Feature
	if m.Sign == Negative {
		return !is
	}
	return is
}
