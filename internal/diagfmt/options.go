package diagfmt

// PrettyOpts configures pretty-printing of a diagnostic bag (spec.md §6:
// the human-readable rendering isn't spec'd in detail, so its shape
// follows the teacher's internal/diagfmt.PrettyOpts, trimmed to what
// chronlang's already-resolved source.Span/Position actually need).
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// SourceLines maps a source name to its full text, so a caret line can
	// be printed under the offending span. Nil or a missing entry just
	// skips the context line for that diagnostic.
	SourceLines map[string][]string
}

// JSONOpts configures JSON output of a diagnostic bag.
type JSONOpts struct {
	IncludeNotes bool
}
