package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonSpan struct {
	Source string       `json:"source"`
	Start  jsonPosition `json:"start"`
	End    jsonPosition `json:"end"`
}

type jsonNote struct {
	Span    jsonSpan `json:"span"`
	Message string   `json:"message"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Span     jsonSpan   `json:"span"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

func toJSONSpan(s source.Span) jsonSpan {
	return jsonSpan{
		Source: s.Source,
		Start:  jsonPosition{s.Start.Offset, s.Start.Line, s.Start.Column},
		End:    jsonPosition{s.End.Offset, s.End.Line, s.End.Column},
	}
}

// JSON writes bag as a JSON array of diagnostics, matching spec.md §6's
// plain-record shape `{ message, span }` (extended with severity/code/
// notes, since a real CLI output needs to distinguish those).
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Span:     toJSONSpan(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Span: toJSONSpan(n.Span), Message: n.Msg})
			}
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
