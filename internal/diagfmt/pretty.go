// Package diagfmt renders a diag.Bag for a human (Pretty) or a tool
// (JSON). Grounded on the teacher's internal/diagfmt package (same two
// output modes, same PrettyOpts/JSONOpts split) but rewritten against
// chronlang's diagnostics, which carry an already-resolved
// source.Position — no FileSet lookup is needed to print a line:column.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan)
	locColor     = color.New(color.Faint)
)

// Pretty writes bag (assumed already Sort()ed by the caller) as
// human-readable text: one `<source>:<line>:<col>: <severity> <code>:
// <message>` line per diagnostic, an optional caret-underlined source
// line, then its notes indented beneath it.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnosticLine(w, d.Severity, d.Code.String(), d.Primary, d.Message, opts)
		if opts.SourceLines != nil {
			writeContextLine(w, d.Primary, opts)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeNoteLine(w, n, opts)
			}
		}
	}
}

func writeDiagnosticLine(w io.Writer, sev diag.Severity, code string, span source.Span, msg string, opts PrettyOpts) {
	loc := fmt.Sprintf("%s:%d:%d", span.Source, span.Start.Line, span.Start.Column)
	sevWord := sev.String()
	if !opts.Color {
		fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sevWord, code, msg)
		return
	}
	c := errorColor
	if sev == diag.SevWarning {
		c = warningColor
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", locColor.Sprint(loc), c.Sprint(sevWord), code, msg)
}

func writeContextLine(w io.Writer, span source.Span, opts PrettyOpts) {
	lines, ok := opts.SourceLines[span.Source]
	lineIdx := span.Start.Line - 1
	if !ok || lineIdx < 0 || lineIdx >= len(lines) {
		return
	}
	text := lines[lineIdx]
	fmt.Fprintf(w, "  %s\n", text)

	width := span.End.Column - span.Start.Column
	if width < 1 {
		width = 1
	}
	pad := span.Start.Column - 1
	if pad < 0 {
		pad = 0
	}
	caret := strings.Repeat(" ", pad) + strings.Repeat("^", width)
	if opts.Color {
		caret = noteColor.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s\n", caret)
}

func writeNoteLine(w io.Writer, n diag.Note, opts PrettyOpts) {
	loc := fmt.Sprintf("%s:%d:%d", n.Span.Source, n.Span.Start.Line, n.Span.Start.Column)
	if opts.Color {
		fmt.Fprintf(w, "  %s %s: %s\n", noteColor.Sprint("note"), locColor.Sprint(loc), n.Msg)
		return
	}
	fmt.Fprintf(w, "  note %s: %s\n", loc, n.Msg)
}
