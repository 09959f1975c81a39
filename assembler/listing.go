package assembler

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteListing renders every source line next to the word it produced.
func (r *Result) WriteListing(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Line", "ROM", "Word", "Source", "Status"})

	for _, l := range r.Lines {
		switch l.Status {
		case StatusEncoded:
			t.AppendRow(table.Row{l.Line, l.Address, l.Word.String(), l.Source, l.Status})
		case StatusRejected:
			t.AppendRow(table.Row{l.Line, "", "", l.Source, diagnostic(l.Err)})
		default:
			t.AppendRow(table.Row{l.Line, "", "", l.Source, ""})
		}
	}

	t.AppendFooter(table.Row{"", len(r.Words), "words", "", rejectedSummary(r.Rejected())})
	t.Render()
}

func diagnostic(err error) string {
	var le *LineError
	if errors.As(err, &le) {
		return le.Err.Error()
	}
	return err.Error()
}

func rejectedSummary(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d rejected", n)
}
