package jsontab

// QuotePlaceholder stands in for an embedded right cell delimiter while a
// cell is rendered. [Options.LiteralReplacements] decide what it becomes;
// the presets turn it into the doubled delimiter. A placeholder left over
// after the replacements is restored to the delimiter itself.
const QuotePlaceholder = "\uE000"

// Options controls how a [Grid] is rendered as text.
//
// [Render] fills unset string fields with defaults: "," between cells,
// `"` on both sides of a wrapped cell, a newline at the end of each line.
// A nil slice also takes its default: EscapeTriggers become the line
// breaks, the right wrap string and the column delimiter, and
// LiteralReplacements double the right wrap string. An empty non-nil
// slice turns the feature off. The bool fields have no such default; the
// preset constructors set them.
type Options struct {
	// ColumnDelimiter joins the cells of a line.
	ColumnDelimiter string `yaml:"column_delimiter"`
	// CellLeftDelimiter and CellRightDelimiter wrap a cell that contains
	// one of EscapeTriggers.
	CellLeftDelimiter  string `yaml:"cell_left_delimiter"`
	CellRightDelimiter string `yaml:"cell_right_delimiter"`
	// EscapeTriggers are substrings that force a cell to be wrapped.
	EscapeTriggers []string `yaml:"escape_triggers"`
	// HeaderSeparator, when set, is repeated across the widest line to form
	// a separator line after the header rows.
	HeaderSeparator string `yaml:"header_separator"`
	// LiteralReplacements are applied in order to every cell before the
	// escape triggers are checked.
	LiteralReplacements []Replacement `yaml:"literal_replacements"`
	// PadCells right-pads every cell with spaces to its column's width.
	PadCells bool `yaml:"pad_cells"`
	// DeduplicateHeaders strips a parent's path from the labels below it.
	DeduplicateHeaders bool `yaml:"deduplicate_headers"`
	// LineTerminator ends every line, the last included. Default "\n".
	LineTerminator string `yaml:"line_terminator"`
}

// Replacement is a literal substring substitution.
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// DefaultOptions returns the delimited (CSV) preset.
func DefaultOptions() Options { return CSVOptions() }

func doubledQuote(q string) []Replacement {
	return []Replacement{{Old: QuotePlaceholder, New: q + q}}
}

// withDefaults returns o with every unset field filled in.
func (o Options) withDefaults() Options {
	if o.ColumnDelimiter == "" {
		o.ColumnDelimiter = ","
	}
	if o.CellLeftDelimiter == "" {
		o.CellLeftDelimiter = `"`
	}
	if o.CellRightDelimiter == "" {
		o.CellRightDelimiter = `"`
	}
	if o.EscapeTriggers == nil {
		o.EscapeTriggers = []string{"\n", "\r", o.CellRightDelimiter, o.ColumnDelimiter}
	}
	if o.LiteralReplacements == nil {
		o.LiteralReplacements = doubledQuote(o.CellRightDelimiter)
	}
	if o.LineTerminator == "" {
		o.LineTerminator = "\n"
	}
	return o
}
