// Package diag defines the diagnostic model shared by internal/module,
// internal/soundchange, and internal/snapshot: a severity/code/message
// record (Diagnostic), a collector (Bag) that sorts and deduplicates for
// stable output, and a thin Reporter indirection so producers don't need
// to know whether their diagnostics end up in a Module's own bag or a
// caller-supplied one (used when re-emitting an imported module's errors,
// spec.md §4.2).
//
// Rendering (color, JSON, terminal wrapping) lives in internal/diagfmt;
// this package is pure data.
package diag
