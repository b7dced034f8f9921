// Package render prints a computed lexicon as a table. Column widths are
// measured with github.com/mattn/go-runewidth rather than rune counts:
// combining diacritics and precomposed IPA glyphs disagree on how many
// runes they take but agree on how many terminal cells they occupy, so a
// naive len()-based column would drift out of alignment on real
// transcriptions.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func joinDefinitions(defs []lexicon.Definition) string {
	if len(defs) == 0 {
		return ""
	}
	parts := make([]string, len(defs))
	for i, d := range defs {
		if d.PartOfSpeech != "" {
			parts[i] = fmt.Sprintf("(%s) %s", d.PartOfSpeech, d.Text)
		} else {
			parts[i] = d.Text
		}
	}
	return strings.Join(parts, "; ")
}

// Table writes snap's words as a gloss / pronunciation / definitions table,
// column-aligned by display width rather than byte or rune length.
func Table(w io.Writer, snap *snapshot.Snapshot) {
	const glossHeader, pronHeader = "gloss", "pronunciation"
	glossWidth, pronWidth := runewidth.StringWidth(glossHeader), runewidth.StringWidth(pronHeader)

	rendered := make([]string, len(snap.Words))
	for i, word := range snap.Words {
		rendered[i] = word.Render()
		if gw := runewidth.StringWidth(word.Gloss); gw > glossWidth {
			glossWidth = gw
		}
		if pw := runewidth.StringWidth(rendered[i]); pw > pronWidth {
			pronWidth = pw
		}
	}

	fmt.Fprintf(w, "%s  %s  definitions\n", padRight(glossHeader, glossWidth), padRight(pronHeader, pronWidth))
	fmt.Fprintf(w, "%s  %s\n", strings.Repeat("-", glossWidth), strings.Repeat("-", pronWidth))
	for i, word := range snap.Words {
		fmt.Fprintf(w, "%s  %s  %s\n",
			padRight(word.Gloss, glossWidth),
			padRight(rendered[i], pronWidth),
			joinDefinitions(word.Definitions))
	}
}
