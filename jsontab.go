package jsontab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedSyntax = errors.New("unsupported input syntax")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedValue  = errors.New("unsupported value")
)

// Format represents an output format.
type Format string

const (
	CSV   Format = "csv"
	TSV   Format = "tsv"
	Table Format = "table"
	HTML  Format = "html"
)

var formats = []Format{CSV, TSV, Table, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Options returns the preset used to render f. HTML is not rendered from
// Options and gets the CSV preset.
func (f Format) Options() Options {
	switch f {
	case TSV:
		return TSVOptions()
	case Table:
		return TableOptions()
	default:
		return CSVOptions()
	}
}

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Syntax names an input document syntax.
type Syntax string

const (
	JSON  Syntax = "json"
	JSONL Syntax = "jsonl"
	YAML  Syntax = "yaml"
)

// ParseSyntax parses an input syntax name. "yml" and "ndjson" are accepted
// as aliases.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "jsonl", "ndjson":
		return JSONL, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSyntax, s)
}

// SyntaxFromPath picks the syntax from a file extension, defaulting to JSON.
func SyntaxFromPath(path string) Syntax {
	s, err := ParseSyntax(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return JSON
	}
	return s
}

// Parse reads a document of the given syntax.
func Parse(r io.Reader, s Syntax) (Value, error) {
	switch s {
	case JSON:
		return ParseJSON(r)
	case JSONL:
		return ParseJSONL(r)
	case YAML:
		return ParseYAML(r)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedSyntax, s)
	}
}

// Convert flattens v and renders it with o.
func Convert(v Value, o Options) string {
	return Render(Flatten(v), o)
}

// Write flattens items and writes them to w in format f. A single array
// item supplies the records itself; otherwise every item is one record.
func Write[T any](w io.Writer, f Format, items ...T) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	root, err := rootOf(items)
	if err != nil {
		return err
	}
	return writeGrid(w, f, Flatten(root))
}

// WriteOptions is like [Write] with custom text rendering options.
func WriteOptions[T any](w io.Writer, o Options, items ...T) error {
	root, err := rootOf(items)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, Convert(root, o))
	return err
}

// Marshal formats items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rootOf[T any](items []T) (Value, error) {
	if len(items) == 1 {
		return FromAny(items[0])
	}
	records := make([]Value, len(items))
	for i, item := range items {
		v, err := FromAny(item)
		if err != nil {
			return Value{}, err
		}
		records[i] = v
	}
	return Array(records...), nil
}

func writeGrid(w io.Writer, f Format, g *Grid) error {
	switch f {
	case CSV, TSV, Table:
		_, err := io.WriteString(w, Render(g, f.Options()))
		return err
	case HTML:
		return RenderHTML(w, g, f.Options())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
