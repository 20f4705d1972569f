package jsontab

// CSVOptions returns the delimited preset: comma separated, cells holding a
// comma, double quote or line break wrapped in double quotes with embedded
// quotes doubled.
func CSVOptions() Options {
	return Options{
		ColumnDelimiter:     ",",
		CellLeftDelimiter:   `"`,
		CellRightDelimiter:  `"`,
		EscapeTriggers:      []string{"\n", "\r", `"`, ","},
		LiteralReplacements: doubledQuote(`"`),
		DeduplicateHeaders:  true,
	}
}
