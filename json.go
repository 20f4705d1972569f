package jsontab

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

type jsonParser struct {
	dec *json.Decoder
}

func newJSONParser(r io.Reader) *jsonParser {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonParser{dec: dec}
}

// ParseJSON reads a single JSON document. Object key order and number
// literals are kept as written.
func ParseJSON(r io.Reader) (Value, error) {
	p := newJSONParser(r)
	v, err := p.value()
	if errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	if err != nil {
		return Value{}, err
	}
	if _, err := p.dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after document", ErrInvalidInput)
	}
	return v, nil
}

// ParseJSONL reads a stream of JSON values, one record per value, and
// returns them as an array.
func ParseJSONL(r io.Reader) (Value, error) {
	p := newJSONParser(r)
	var records []Value
	for {
		v, err := p.value()
		if errors.Is(err, io.EOF) {
			return Array(records...), nil
		}
		if err != nil {
			return Value{}, fmt.Errorf("record %d: %w", len(records)+1, err)
		}
		records = append(records, v)
	}
}

// value returns io.EOF only when the stream ends before a value starts.
func (p *jsonParser) value() (Value, error) {
	tok, err := p.dec.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, io.EOF
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return Value{}, fmt.Errorf("%w: unexpected %q", ErrInvalidInput, t)
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(string(t)), nil
	case float64:
		return Float(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected token %v", ErrInvalidInput, tok)
	}
}

func (p *jsonParser) object() (Value, error) {
	var fields []Field
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return Value{}, p.inner(err)
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: object key %v is not a string", ErrInvalidInput, tok)
		}
		v, err := p.value()
		if err != nil {
			return Value{}, p.inner(err)
		}
		fields = append(fields, Field{Key: key, Value: v})
	}
	if err := p.closing('}'); err != nil {
		return Value{}, err
	}
	return Object(fields...), nil
}

func (p *jsonParser) array() (Value, error) {
	items := []Value{}
	for p.dec.More() {
		v, err := p.value()
		if err != nil {
			return Value{}, p.inner(err)
		}
		items = append(items, v)
	}
	if err := p.closing(']'); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func (p *jsonParser) closing(want json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		return p.inner(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidInput, want, tok)
	}
	return nil
}

// inner converts an EOF inside a compound value into a syntax error.
func (p *jsonParser) inner(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrInvalidInput)
	}
	if errors.Is(err, ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, err)
}

// FromAny converts a Go value into a [Value]. Values and *Values pass
// through; anything else is encoded as JSON and read back, so struct fields
// keep their declaration order and map keys come out sorted.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Null(), nil
		}
		return *v, nil
	case nil:
		return Null(), nil
	case json.RawMessage:
		return ParseJSON(bytes.NewReader(v))
	}
	data, err := json.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %T: %s", ErrUnsupportedValue, x, err)
	}
	return ParseJSON(bytes.NewReader(data))
}
