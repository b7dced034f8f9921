// Package soundchange implements spec.md §4.4, the most intricate
// component of the engine: a sound change's shape (source pattern,
// target, optional environment), its applicability test, natural-class
// (category) matching of pattern segments, match discovery, environment
// testing, and the rewrite step that splices resolved targets into a
// word's phoneme sequence — including feature-modification targets that
// must be re-resolved to a concrete phoneme in the current inventory.
package soundchange
