package phon

import "github.com/conlangtools/chronlang-engine/internal/source"

// SeriesKind distinguishes the two Series variants spec.md §3 describes.
type SeriesKind uint8

const (
	SeriesList SeriesKind = iota
	SeriesCategory
)

// Series is a named grouping of phonemes, either an explicit ordered list
// of references or a feature-predicate Category.
type Series struct {
	Name     string
	Span     source.Span
	Kind     SeriesKind
	List     []*Phoneme // SeriesList
	Category *Category  // SeriesCategory
}

// Contains implements PhonemeSet: for a list series, membership; for a
// category series, delegates to the embedded category predicate (spec.md
// §4.4.3, recursive case).
func (s *Series) Contains(p *Phoneme) bool {
	switch s.Kind {
	case SeriesList:
		for _, candidate := range s.List {
			if candidate == p {
				return true
			}
		}
		return false
	case SeriesCategory:
		if s.Category == nil {
			return false
		}
		return s.Category.Matches(p)
	default:
		return false
	}
}

// PhonemeSet is satisfied by anything a Category can use as a base, and by
// anything a sound-change pattern segment can test a phoneme against:
// *Class and *Series (spec.md §4.4.3).
type PhonemeSet interface {
	Contains(p *Phoneme) bool
}
