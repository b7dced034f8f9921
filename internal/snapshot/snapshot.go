// Package snapshot implements spec.md §4.7: freezing a Module's lexicon at
// a single (language, time) point by folding every applicable sound
// change, in tag order, over every visible word.
package snapshot

import (
	"sort"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

// Snapshot is the result of Build: the words visible to language at time,
// each folded forward through every sound change that applies to it.
type Snapshot struct {
	Language     *langtree.Language
	Time         int64
	Words        []*lexicon.Word
	SoundChanges []*soundchange.Change
	Errors       *diag.Bag
	Warnings     *diag.Bag
}

// OK reports whether building the snapshot raised no errors (spec.md
// §4.7's `ok: errors.length == 0`). Warnings — un-resolvable feature
// modifications at rewrite time — never affect OK.
func (s *Snapshot) OK() bool {
	return s.Errors.Len() == 0
}

// Build implements spec.md §4.7's four steps.
func Build(m *module.Module, language *langtree.Language, time int64) *Snapshot {
	snap := &Snapshot{
		Language: language,
		Time:     time,
		Errors:   diag.NewBag(),
		Warnings: diag.NewBag(),
	}
	// Carries the compile's own diagnostics forward: a snapshot is only
	// as trustworthy as the Module it was built from (spec.md §4.7's
	// `ok: errors.length == 0` reads as the whole pipeline's errors, not
	// just ones raised during the fold itself).
	snap.Errors.Merge(m.Errors)
	snap.Warnings.Merge(m.Warnings)
	warner := diag.BagReporter{Bag: snap.Warnings}

	changes := make([]*soundchange.Change, 0, len(m.SoundChanges))
	for _, c := range m.SoundChanges {
		if c.Tag.Start <= time {
			changes = append(changes, c)
		}
	}
	langtree.SortByTag(changes, func(c *soundchange.Change) langtree.Tag { return c.Tag })
	snap.SoundChanges = changes

	for _, w := range m.Words {
		if !langtree.IsAncestor(language, w.Tag.Language) {
			continue
		}
		if !(w.Tag.Start <= time && time <= w.Tag.End) {
			continue
		}

		current := w
		for _, c := range changes {
			if next, changed := soundchange.ApplyIfApplicable(c, current, warner); changed {
				current = next
			}
		}
		snap.Words = append(snap.Words, current)
	}
	// m.Words is a map; Module itself carries no ordering for words
	// (spec.md §3 orders only milestones/soundChanges/errors/warnings), so
	// gloss order is the snapshot's own deterministic choice.
	sort.Slice(snap.Words, func(i, j int) bool { return snap.Words[i].Gloss < snap.Words[j].Gloss })

	return snap
}
