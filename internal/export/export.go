// Package export serializes a computed snapshot.Snapshot to msgpack. This
// is a derived report, not a compiled Module — persisting a Module itself
// is out of scope, but a Snapshot's lexicon is exactly the kind of
// point-in-time artifact a downstream tool (a dictionary app, a
// diffing script) wants to consume without relinking chronlang's own
// types.
package export

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

// Definition mirrors lexicon.Definition, dropping its source spans — an
// export has no source file to point back into.
type Definition struct {
	PartOfSpeech string `msgpack:"part_of_speech,omitempty"`
	Text         string `msgpack:"text"`
}

// Word is the flattened, cycle-free record a Word exports as. phon.Phoneme
// and lexicon.Word carry back-references (Features map[*Trait]*Feature,
// Etymology chains of *Word) that msgpack has no reason to walk.
type Word struct {
	Gloss       string       `msgpack:"gloss"`
	Pronunciation string     `msgpack:"pronunciation"`
	Definitions []Definition `msgpack:"definitions,omitempty"`
	// Etymology lists the change descriptions that produced this word's
	// current pronunciation, oldest first.
	Etymology []string `msgpack:"etymology,omitempty"`
}

// Report is the top-level exported document: one language at one point in
// time, per spec.md §4.7's Snapshot.
type Report struct {
	Language string `msgpack:"language"`
	Time     int64  `msgpack:"time"`
	Words    []Word `msgpack:"words"`
}

func fromWord(w *lexicon.Word) Word {
	rec := Word{Gloss: w.Gloss, Pronunciation: w.Render()}
	for _, d := range w.Definitions {
		rec.Definitions = append(rec.Definitions, Definition{PartOfSpeech: d.PartOfSpeech, Text: d.Text})
	}
	for _, step := range w.Etymology {
		rec.Etymology = append(rec.Etymology, step.Change.Describe())
	}
	return rec
}

// FromSnapshot flattens snap into its exportable form.
func FromSnapshot(snap *snapshot.Snapshot) Report {
	report := Report{Time: snap.Time}
	if snap.Language != nil {
		report.Language = snap.Language.ID
	}
	report.Words = make([]Word, len(snap.Words))
	for i, w := range snap.Words {
		report.Words[i] = fromWord(w)
	}
	return report
}

// Write encodes snap as msgpack to w.
func Write(w io.Writer, snap *snapshot.Snapshot) error {
	return msgpack.NewEncoder(w).Encode(FromSnapshot(snap))
}
