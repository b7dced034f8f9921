package langtree

import "sort"

// Tag is attached to every word and sound change: a language, a
// half-open time window, and a module-wide monotonic Index that
// tie-breaks identically timed rules (spec.md §3).
type Tag struct {
	Start    int64
	End      int64
	Language *Language
	Index    int
}

// TagsOverlap implements spec.md §4.4.2's applicability test: half-open,
// exclusive at both ends. a.Start < b.End ∧ b.Start < a.End.
func TagsOverlap(a, b Tag) bool {
	return a.Start < b.End && b.Start < a.End
}

// SortByTag is the stable lexicographic order on (Start, Index) spec.md §5
// and §4.7 specify: ties on Start are broken by Index (insertion order).
func SortByTag[T any](items []T, tagOf func(T) Tag) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := tagOf(items[i]), tagOf(items[j])
		if ti.Start != tj.Start {
			return ti.Start < tj.Start
		}
		return ti.Index < tj.Index
	})
}
