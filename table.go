package jsontab

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableOptions returns the fixed-width preset: pipe separated, no cell
// wrapping, every cell padded to its column width and a dashed line after
// the header rows.
func TableOptions() Options {
	return Options{
		ColumnDelimiter:     "|",
		EscapeTriggers:      []string{},
		HeaderSeparator:     "-",
		LiteralReplacements: []Replacement{},
		PadCells:            true,
		DeduplicateHeaders:  true,
	}
}

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// separatorLine repeats sep across width display columns. A repetition that
// does not fit whole is cut.
func separatorLine(sep string, width int) string {
	sw := runewidth.StringWidth(sep)
	if sw == 0 || width <= 0 {
		return ""
	}
	line := strings.Repeat(sep, (width+sw-1)/sw)
	return runewidth.Truncate(line, width, "")
}
