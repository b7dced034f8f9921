// Package phon holds the phonology value model spec.md §3 and §4.3
// describe: traits and their features, classes and the phonemes declared
// under them, series (explicit lists or feature-predicate categories), and
// the modifier/category machinery sound changes use for natural-class
// matching (spec.md §4.4.3).
//
// Every entity here has identity by reference within one
// internal/module.Module; nothing in this package mutates a value after its
// owning statement finishes constructing it, except the two append-only
// slices the driver fills in incrementally during that statement's own
// declaration (Trait.Features, Class.Phonemes — see internal/module).
package phon
