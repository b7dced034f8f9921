package langtree

import "github.com/conlangtools/chronlang-engine/internal/source"

// Milestone is a (starts, ends, language) triple produced by the driver
// whenever a milestone statement sets a time or a language and the
// driver's context then holds both (spec.md §3, §4.6). Ends is EndOfTime
// for an instant milestone.
type Milestone struct {
	Starts   int64
	Ends     int64
	Language *Language
	Span     source.Span
}

// Identity is the (starts, ends, language) triple milestone deduplication
// compares (spec.md §4.2, §4.6: "deduplicated by (starts, ends, language)
// identity").
func (m *Milestone) Identity() (int64, int64, *Language) {
	return m.Starts, m.Ends, m.Language
}

// AppendDedup appends m to list unless an equal-identity milestone is
// already present, returning the (possibly unchanged) list.
func AppendDedup(list []*Milestone, m *Milestone) []*Milestone {
	ms, me, ml := m.Identity()
	for _, existing := range list {
		es, ee, el := existing.Identity()
		if es == ms && ee == me && el == ml {
			return list
		}
	}
	return append(list, m)
}
