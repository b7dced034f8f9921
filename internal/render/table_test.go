package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/render"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

func TestTableAlignsColumnsAndListsDefinitions(t *testing.T) {
	snap := &snapshot.Snapshot{
		Words: []*lexicon.Word{
			{
				Gloss:    "water",
				Phonemes: []*phon.Phoneme{{Glyph: "w"}, {Glyph: "a"}, {Glyph: "t"}, {Glyph: "e"}, {Glyph: "r"}},
				Definitions: []lexicon.Definition{
					{PartOfSpeech: "n", Text: "clear liquid"},
				},
			},
			{
				Gloss:    "run",
				Phonemes: []*phon.Phoneme{{Glyph: "r"}, {Glyph: "u"}, {Glyph: "n"}},
			},
		},
	}

	var buf bytes.Buffer
	render.Table(&buf, snap)
	out := buf.String()

	if !strings.Contains(out, "(n) clear liquid") {
		t.Fatalf("expected definition rendering, got %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + separator + two rows, got %d lines: %q", len(lines), out)
	}
	waterIdx := strings.Index(lines[2], "water")
	runIdx := strings.Index(lines[3], "run")
	if waterIdx != runIdx {
		t.Fatalf("expected gloss column to align, got %q vs %q", lines[2], lines[3])
	}
}
