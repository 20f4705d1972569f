package jsontab

// TSVOptions returns the delimited preset with tabs between cells.
func TSVOptions() Options {
	o := CSVOptions()
	o.ColumnDelimiter = "\t"
	o.EscapeTriggers = []string{"\n", "\r", `"`, "\t"}
	return o
}
