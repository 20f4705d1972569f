package jsontab

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render writes g as text. Every line, the last included, ends with the
// line terminator. A grid without columns renders as "". Unset fields of o
// take their defaults, see [Options].
func Render(g *Grid, o Options) string {
	if g.Width() == 0 {
		return ""
	}
	o = o.withDefaults()
	header := g.Headers(o.DeduplicateHeaders)
	rows := append(header, g.Rows()...)
	for _, row := range rows {
		for i, cell := range row {
			row[i] = o.escape(cell)
		}
	}
	if o.PadCells {
		widths := computeWidths(g.Width(), rows)
		for _, row := range rows {
			for i, cell := range row {
				row[i] = padCell(cell, widths[i])
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	longest := 0
	for _, row := range rows {
		line := strings.Join(row, o.ColumnDelimiter)
		longest = max(longest, runewidth.StringWidth(line))
		lines = append(lines, line)
	}
	if o.HeaderSeparator != "" {
		sep := separatorLine(o.HeaderSeparator, longest)
		lines = append(lines[:len(header)], append([]string{sep}, lines[len(header):]...)...)
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(o.LineTerminator)
	}
	return sb.String()
}

// escape applies the literal replacements to a cell and wraps it when it
// holds an escape trigger.
func (o Options) escape(cell string) string {
	if o.CellRightDelimiter != "" {
		cell = strings.ReplaceAll(cell, o.CellRightDelimiter, QuotePlaceholder)
	}
	for _, r := range o.LiteralReplacements {
		if r.Old != "" {
			cell = strings.ReplaceAll(cell, r.Old, r.New)
		}
	}
	if o.CellRightDelimiter != "" {
		cell = strings.ReplaceAll(cell, QuotePlaceholder, o.CellRightDelimiter)
	}
	for _, t := range o.EscapeTriggers {
		if t != "" && strings.Contains(cell, t) {
			return o.CellLeftDelimiter + cell + o.CellRightDelimiter
		}
	}
	return cell
}
