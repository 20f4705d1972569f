package jsontab

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindNames = [...]string{"null", "bool", "number", "string", "object", "array"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Value is a node of a parsed document tree. The zero Value is null.
//
// Objects keep their fields in insertion order; that order decides column
// order in the flattened table.
type Value struct {
	kind   Kind
	text   string // string contents or number literal
	b      bool
	fields []Field
	items  []Value
}

// Field is a single object member.
type Field struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value holding the literal as written.
func Number(lit string) Value { return Value{kind: KindNumber, text: lit} }

// Int returns a number value for n.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// Float returns a number value for f.
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'f', -1, 64)) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Object returns an object value. A repeated key keeps its first position
// and takes the last value.
func Object(fields ...Field) Value {
	out := make([]Field, 0, len(fields))
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := seen[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		seen[f.Key] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindObject, fields: out}
}

// Array returns an array value.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsCompound reports whether v is an object or an array.
func (v Value) IsCompound() bool { return v.kind == KindObject || v.kind == KindArray }

// Fields returns the members of an object, in order. Nil for other kinds.
func (v Value) Fields() []Field { return v.fields }

// Items returns the elements of an array. Nil for other kinds.
func (v Value) Items() []Value { return v.items }

// Len returns the number of fields or elements of a compound value.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.fields)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Get returns the value stored under key in an object.
func (v Value) Get(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Text returns the cell text of a primitive: strings as-is, numbers as
// their literal, booleans as "true"/"false" and null as "null". Compound
// values have no cell text and return "".
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber, KindString:
		return v.text
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindObject:
		return fmt.Sprintf("object(%d)", len(v.fields))
	case KindArray:
		return fmt.Sprintf("array(%d)", len(v.items))
	default:
		return v.Text()
	}
}
