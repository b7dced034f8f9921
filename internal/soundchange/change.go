package soundchange

import (
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

// SourceKind distinguishes an empty source (applies between phonemes, for
// insertion rules) from an explicit pattern.
type SourceKind uint8

const (
	SourceEmpty SourceKind = iota
	SourcePattern
)

// Source is a sound change's left-hand side (spec.md §4.4.1).
type Source struct {
	Kind    SourceKind
	Pattern []Segment
}

// TargetKind distinguishes deletion, a literal replacement, and a
// feature-modification target.
type TargetKind uint8

const (
	TargetEmpty TargetKind = iota
	TargetPhonemes
	TargetModification
)

// Target is a sound change's right-hand side (spec.md §4.4.1).
type Target struct {
	Kind      TargetKind
	Phonemes  []*phon.Phoneme
	Modifiers []phon.Modifier
}

// Environment conditions a change on its surroundings (spec.md §4.4.1).
type Environment struct {
	Before      []Segment
	After       []Segment
	AnchorStart bool
	AnchorEnd   bool
}

// Change is a sound change: source -> target / environment, tagged to the
// language and time window that declared it (spec.md §4.4.1, §3).
type Change struct {
	Source         Source
	Target         Target
	Environment    *Environment // nullable
	Description    string
	Tag            langtree.Tag
	DefinitionSite source.Span
}

// Describe and TagValue implement internal/lexicon.Change so a Change can
// be recorded in a Word's etymology without internal/lexicon importing
// this package.
func (c *Change) Describe() string      { return c.Description }
func (c *Change) TagValue() langtree.Tag { return c.Tag }

// Length is the number of positions a pattern source consumes (0 for
// an empty source, matched between phonemes).
func (s Source) Length() int {
	if s.Kind == SourceEmpty {
		return 0
	}
	return len(s.Pattern)
}
