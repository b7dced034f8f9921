package phon

// Category is an inline predicate over phonemes — a base class/series plus
// signed feature modifiers (spec.md §3, §4.4.3). It is never a declared
// entity on its own; it is embedded in sound-change pattern segments,
// environment elements, and category series.
type Category struct {
	BaseClass PhonemeSet // nullable
	Modifiers []Modifier
}

// Matches implements spec.md §4.4.3: a phoneme is in the category iff it
// belongs to the base (when one is set) and satisfies every modifier.
func (c *Category) Matches(p *Phoneme) bool {
	if c.BaseClass != nil && !c.BaseClass.Contains(p) {
		return false
	}
	for _, m := range c.Modifiers {
		if !m.Matches(p) {
			return false
		}
	}
	return true
}

// Contains lets a bare Category double as a PhonemeSet (a category series'
// embedded category is queried the same way a class or list series is).
func (c *Category) Contains(p *Phoneme) bool {
	return c.Matches(p)
}
