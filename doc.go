// Package jsontab flattens nested documents into tables.
//
// A document is a tree of objects, arrays and primitives, usually parsed
// from JSON, JSON Lines or YAML. [Flatten] lays it out as a [Grid]: the
// elements of a top-level array are the records, nested objects become
// column groups labelled across several header rows, and array elements
// spill onto additional rows that stay aligned with their record.
//
//	v, err := jsontab.ParseJSON(r)
//	out := jsontab.Convert(v, jsontab.CSVOptions())
//
// # Layout
//
// Columns appear in the order fields are first seen. A nested object
// reserves one column per distinct leaf path below it across all records,
// so a field missing from some records still keeps its place. With header
// deduplication on, child labels drop their parent's path:
//
//	[{"name":"a","items":[{"k":"x","v":"1"},{"k":"y","v":"2"}]}]
//
// renders as CSV
//
//	name,items,
//	,k,v
//	a,x,1
//	,y,2
//
// When an object holds several arrays, their elements share rows: element
// i of each array lines up with element i of the others.
//
// # Rendering
//
// [Render] turns a grid into text according to [Options]. Two presets cover
// the common cases:
//
//   - [CSVOptions]: comma separated, RFC 4180 style quoting
//   - [TableOptions]: pipe separated, fixed-width columns, dashed line
//     under the header rows
//
// [TSVOptions] is the delimited preset with tabs.
//
// # Formats
//
// [Write] and [Marshal] accept a [Format] and any Go values or [Value]s:
//
//	jsontab.Write(os.Stdout, jsontab.Table, records...)
//
// Use [ParseFormat] to turn a flag value into a [Format]. [HTML] renders
// the same grid as an HTML table.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrUnsupportedSyntax]: unknown input syntax
//   - [ErrInvalidInput]: input document could not be parsed
//   - [ErrUnsupportedValue]: Go value that cannot be encoded as JSON
package jsontab
