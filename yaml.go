package jsontab

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads YAML documents. A single document is returned as-is;
// several documents become an array of records. Mapping order is kept and
// aliases are resolved. A document whose aliases expand to more than ten
// times its own node count (and past 100000 nodes) is rejected.
func ParseYAML(r io.Reader) (Value, error) {
	dec := yaml.NewDecoder(r)
	var docs []Value
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		b := yamlBuilder{left: expansionLimit(countYAMLNodes(&n))}
		v, err := b.value(&n, 0)
		if err != nil {
			return Value{}, err
		}
		docs = append(docs, v)
	}
	switch len(docs) {
	case 0:
		return Value{}, fmt.Errorf("%w: empty document", ErrInvalidInput)
	case 1:
		return docs[0], nil
	default:
		return Array(docs...), nil
	}
}

const (
	// maxYAMLDepth bounds nesting, aliases included.
	maxYAMLDepth = 512

	// A document may expand through aliases to yamlAliasRatio times its
	// own node count, and always to at least minYAMLExpansion nodes.
	yamlAliasRatio   = 10
	minYAMLExpansion = 100_000
)

// countYAMLNodes counts the nodes written in the document. An alias counts
// once, not as the subtree it points to.
func countYAMLNodes(n *yaml.Node) int {
	count := 1
	for _, c := range n.Content {
		count += countYAMLNodes(c)
	}
	return count
}

func expansionLimit(nodes int) int {
	return max(nodes*yamlAliasRatio, minYAMLExpansion)
}

// yamlBuilder converts yaml nodes into values, expanding aliases, until
// its node budget runs out.
type yamlBuilder struct {
	left int
}

func (b *yamlBuilder) value(n *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return Value{}, fmt.Errorf("%w: yaml nesting exceeds %d levels", ErrInvalidInput, maxYAMLDepth)
	}
	b.left--
	if b.left < 0 {
		return Value{}, fmt.Errorf("%w: yaml aliases expand to too many nodes", ErrInvalidInput)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return b.value(n.Content[0], depth+1)
	case yaml.AliasNode:
		return b.value(n.Alias, depth+1)
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := b.value(n.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Key: n.Content[i].Value, Value: v})
		}
		return Object(fields...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := b.value(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
			}
			return Bool(b), nil
		case "!!int", "!!float":
			return Number(n.Value), nil
		default:
			return String(n.Value), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: unsupported yaml node kind %d", ErrInvalidInput, n.Kind)
	}
}
