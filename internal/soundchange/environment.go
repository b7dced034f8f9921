package soundchange

import "github.com/conlangtools/chronlang-engine/internal/phon"

// testEnvironment implements spec.md §4.4.5 for one candidate range
// [r.Start, r.End) against word phonemes P. A nil environment matches
// unconditionally.
func testEnvironment(env *Environment, phonemes []*phon.Phoneme, r Range) bool {
	if env == nil {
		return true
	}

	if env.AnchorStart && r.Start-len(env.Before) != 0 {
		return false
	}
	if env.AnchorEnd && r.End+len(env.After) != len(phonemes) {
		return false
	}

	beforeStart := r.Start - len(env.Before)
	if beforeStart < 0 {
		return false
	}
	if !matchesWindow(env.Before, phonemes[beforeStart:r.Start]) {
		return false
	}

	afterEnd := r.End + len(env.After)
	if afterEnd > len(phonemes) {
		return false
	}
	if !matchesWindow(env.After, phonemes[r.End:afterEnd]) {
		return false
	}

	return true
}
