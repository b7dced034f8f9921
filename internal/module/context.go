package module

import "github.com/conlangtools/chronlang-engine/internal/langtree"

// compileState is the ambient context spec.md §9 says to model explicitly
// and scope to one compilation, never process-wide: the current language,
// the current time window, and the monotonic tagIndex/phonemeIndex
// counters (spec.md §4.1). inFlight is shared across the recursive
// compileModule calls one compilation's imports trigger, so a cycle can be
// detected (spec.md §9's open question, resolved in DESIGN.md: detect
// explicitly).
type compileState struct {
	sourceName string

	currentLanguage *langtree.Language
	timeSet         bool
	tagStart        int64
	tagEnd          int64

	tagIndex     int
	phonemeIndex int

	inFlight map[string]bool
}

func newCompileState(sourceName string, inFlight map[string]bool) *compileState {
	return &compileState{sourceName: sourceName, inFlight: inFlight}
}

// canMaterializeTag reports whether language, start, and end are all set
// (spec.md §4.1: "a tag is materializable iff all three ... are set").
func (st *compileState) canMaterializeTag() bool {
	return st.currentLanguage != nil && st.timeSet
}

// materializeTag assembles a Tag from the current context, assigning and
// advancing tagIndex. Callers must check canMaterializeTag first; calling
// this otherwise is a programmer error, not an input error (spec.md §4.1).
func (st *compileState) materializeTag() langtree.Tag {
	if !st.canMaterializeTag() {
		panic("module: materializeTag called without a complete context")
	}
	idx := st.tagIndex
	st.tagIndex++
	return langtree.Tag{Start: st.tagStart, End: st.tagEnd, Language: st.currentLanguage, Index: idx}
}

func (st *compileState) nextPhonemeIndex() int {
	idx := st.phonemeIndex
	st.phonemeIndex++
	return idx
}
