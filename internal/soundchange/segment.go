package soundchange

import "github.com/conlangtools/chronlang-engine/internal/phon"

// Segment is one element of a source pattern or an environment's
// before/after list: either a specific phoneme reference or a category
// predicate (spec.md §4.4.1). Parsed syllable-boundary markers never
// reach this package — internal/module drops them while building a
// Source/Environment, since the engine treats them as no-ops (spec.md
// §4.4.1, §9).
type Segment struct {
	Phoneme  *phon.Phoneme  // set for a literal phoneme reference
	Category *phon.Category // set for a natural-class predicate
}

// Matches reports whether p satisfies this segment: reference equality
// for a literal phoneme, predicate membership for a category.
func (s Segment) Matches(p *phon.Phoneme) bool {
	if s.Phoneme != nil {
		return s.Phoneme == p
	}
	if s.Category != nil {
		return s.Category.Matches(p)
	}
	return false
}
