// Package module is the compilation unit spec.md §3/§4.1 describes: it
// walks an ordered statement sequence, builds the phonology/lexicon/tag
// graph those statements declare, enforces the cross-namespace uniqueness
// and reference invariants, and exposes the resulting Module for snapshot
// building. Statement dispatch, the compiler context (current language,
// current time window, the tagIndex/phonemeIndex counters), and import
// resolution all live here; internal/phon, internal/lexicon,
// internal/langtree, and internal/soundchange hold only the value types
// this package constructs.
package module
