package phon

import "github.com/conlangtools/chronlang-engine/internal/source"

// Class is a named set of phonemes that all specify a feature for the
// same ordered list of traits (spec.md §3).
type Class struct {
	Name     string
	Span     source.Span
	Encodes  []*Trait
	Phonemes []*Phoneme

	// Annotates is populated from the class declaration but never consumed
	// by the engine (spec.md §9's open question, carried over as a reserved
	// field).
	Annotates []string
}

// Contains reports whether p was declared under this class.
func (c *Class) Contains(p *Phoneme) bool {
	for _, candidate := range c.Phonemes {
		if candidate == p {
			return true
		}
	}
	return false
}

// PhonemeByGlyph finds a class member by its exact glyph.
func (c *Class) PhonemeByGlyph(glyph string) (*Phoneme, bool) {
	for _, p := range c.Phonemes {
		if p.Glyph == glyph {
			return p, true
		}
	}
	return nil, false
}

// EncodesIndex returns the position of t within Encodes, or -1.
func (c *Class) EncodesIndex(t *Trait) int {
	for i, e := range c.Encodes {
		if e == t {
			return i
		}
	}
	return -1
}
