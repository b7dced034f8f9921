// Package ast models the statement and expression shapes the external
// chronlang parser hands the compiler (spec.md §4.1, §6). Nothing in this
// package resolves names or validates references; that is the compiler
// driver's job in internal/module. Every node keeps the span the parser
// attached to it so the driver can point diagnostics at exact source
// locations.
package ast

import "github.com/conlangtools/chronlang-engine/internal/source"

// Spanned pairs a parsed value with the span it was parsed from.
type Spanned[T any] struct {
	Value T
	Span  source.Span
}

// Sign is the polarity of a feature modifier, as written in source
// (`+feature` or `-feature`).
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Stmt is one top-level statement. The concrete types below are the
// closed set spec.md §4.1 enumerates: import, language, milestone, trait,
// class, series, word, sound-change.
type Stmt interface {
	stmtNode()
}

// Import brings names from another module into scope (spec.md §4.2).
// Path is the dotted/slashed segment list; a leading "@scope" segment
// marks a scoped import. Names lists the requested imports; "*" denotes
// a wildcard.
type Import struct {
	Span  source.Span
	Path  []Spanned[string]
	Names []Spanned[string]
}

func (Import) stmtNode() {}

// Language declares one node of the family tree.
type Language struct {
	Span   source.Span
	ID     Spanned[string]
	Parent *Spanned[string] // nullable
	Name   *Spanned[string] // nullable
}

func (Language) stmtNode() {}

// TimeKind distinguishes a milestone's instant and range forms.
type TimeKind uint8

const (
	TimeInstant TimeKind = iota
	TimeRange
)

// Time is a milestone's time expression (spec.md §4.6).
type Time struct {
	Kind  TimeKind
	Start int64
	End   int64 // only meaningful for TimeRange; TimeInstant's end is +∞
}

// Milestone sets the driver's current language and/or time window.
type Milestone struct {
	Span     source.Span
	Time     *Spanned[Time]   // nullable
	Language *Spanned[string] // nullable
}

func (Milestone) stmtNode() {}

// TraitMember is one feature within a trait declaration. Labels[0] is the
// primary label; the rest are synonyms.
type TraitMember struct {
	Span     source.Span
	Labels   []Spanned[string]
	Default  bool
	Notation *Spanned[string] // nullable, reserved rendering hint
}

// Trait declares a named phonological dimension and its features.
type Trait struct {
	Span    source.Span
	Label   Spanned[string]
	Members []TraitMember
}

func (Trait) stmtNode() {}

// PhonemeDef is one phoneme declared within a class body: a glyph plus a
// positional feature-label tuple, one label per entry in the class's
// Encodes list.
type PhonemeDef struct {
	Span   source.Span
	Label  Spanned[string]
	Traits []Spanned[string]
}

// Class declares a named set of phonemes sharing a trait skeleton.
type Class struct {
	Span      source.Span
	Label     Spanned[string]
	Encodes   []Spanned[string]
	Annotates []Spanned[string]
	Phonemes  []PhonemeDef
}

func (Class) stmtNode() {}

// Modifier is one signed feature reference within a category (spec.md §3).
type Modifier struct {
	Span    source.Span
	Feature Spanned[string]
	Sign    Sign
}

// Category is a base class/series reference plus signed modifiers.
type Category struct {
	Span      source.Span
	BaseClass *Spanned[string] // nullable
	Modifiers []Modifier
}

// SeriesKind distinguishes a series' two forms.
type SeriesKind uint8

const (
	SeriesList SeriesKind = iota
	SeriesCategory
)

// SeriesBody is a series declaration's right-hand side.
type SeriesBody struct {
	Kind     SeriesKind
	List     []Spanned[string] // SeriesList
	Category Category          // SeriesCategory
}

// Series declares a named grouping of phonemes.
type Series struct {
	Span  source.Span
	Label Spanned[string]
	Body  Spanned[SeriesBody]
}

func (Series) stmtNode() {}

// Definition is one gloss entry attached to a word.
type Definition struct {
	PartOfSpeech *Spanned[string] // nullable
	Text         Spanned[string]
}

// Word declares a lexical entry.
type Word struct {
	Span          source.Span
	Gloss         Spanned[string]
	Pronunciation Spanned[string]
	Definitions   []Definition
}

func (Word) stmtNode() {}

// SegmentKind distinguishes a literal phoneme reference from a category
// predicate within a source pattern or an environment window.
type SegmentKind uint8

const (
	SegmentPhoneme SegmentKind = iota
	SegmentCategory
	SegmentBoundary // syllable-boundary marker; a no-op to the engine
)

// Segment is one element of a source pattern or environment list.
type Segment struct {
	Span     source.Span
	Kind     SegmentKind
	Phoneme  Spanned[string] // SegmentPhoneme
	Category Category        // SegmentCategory
}

// SourceKind distinguishes an empty source from an explicit pattern.
type SourceKind uint8

const (
	SourceEmpty SourceKind = iota
	SourcePattern
)

// Source is a sound change's left-hand side.
type Source struct {
	Kind    SourceKind
	Pattern []Segment
}

// TargetKind distinguishes deletion, literal replacement, and
// feature-modification targets.
type TargetKind uint8

const (
	TargetEmpty TargetKind = iota
	TargetPhonemes
	TargetModification
)

// Target is a sound change's right-hand side.
type Target struct {
	Kind      TargetKind
	Phonemes  []Spanned[string]
	Modifiers []Modifier
}

// Environment conditions a sound change on its surroundings.
type Environment struct {
	Before      []Segment
	After       []Segment
	AnchorStart bool
	AnchorEnd   bool
}

// SoundChange declares a rewrite rule.
type SoundChange struct {
	Span        source.Span
	Source      Spanned[Source]
	Target      Spanned[Target]
	Environment *Spanned[Environment] // nullable
	Description *Spanned[string]      // nullable
}

func (SoundChange) stmtNode() {}
