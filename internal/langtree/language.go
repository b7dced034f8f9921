// Package langtree models the diachronic scaffolding spec.md §3, §4.6, and
// §4.8 describe: the language family tree, the milestones that set a
// compiler's current (language, time-window) context, the tags attached to
// every word and sound change, and the ancestor/overlap/ordering
// predicates the snapshot builder and sound-change engine depend on.
package langtree

import "github.com/conlangtools/chronlang-engine/internal/source"

// EndOfTime stands in for the "ends may be +∞" case spec.md §3 allows for
// a Milestone's instant form.
const EndOfTime = int64(1<<63 - 1)

// Language is one node of the family tree.
type Language struct {
	ID         string
	Name       string
	Span       source.Span
	Parent     *Language
	Milestones []*Milestone
}

// IsAncestor implements spec.md §4.7 exactly: isAncestor(lang, target) iff
// lang == target, or lang.Parent != nil && isAncestor(lang.Parent, target).
// That is, it walks up from lang looking for target — so
// IsAncestor(descendant, target) asks "is target descendant-or-self's
// ancestor", which is how the snapshot builder uses it: a word tagged for
// target is visible from descendant iff IsAncestor(descendant, target).
func IsAncestor(lang, target *Language) bool {
	for l := lang; l != nil; l = l.Parent {
		if l == target {
			return true
		}
	}
	return false
}
