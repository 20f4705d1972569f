package jsontab

import (
	"fmt"
	"html"
	"io"
)

// RenderHTML writes g to w as an HTML table with every header row in
// <thead>. Of o, only DeduplicateHeaders applies. A grid without columns
// writes nothing.
func RenderHTML(w io.Writer, g *Grid, o Options) error {
	if g.Width() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if err := writeHTMLSection(w, "thead", "th", g.Headers(o.DeduplicateHeaders)); err != nil {
		return err
	}
	if err := writeHTMLSection(w, "tbody", "td", g.Rows()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, tag string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <%s>%s</%s>\n", tag, html.EscapeString(cell), tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}
