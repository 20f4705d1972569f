package jsontab

import "strings"

// pathNode is one field name in the trie of every path seen in the input.
// Array indices never appear: elements share their array's node.
type pathNode struct {
	key      string
	parent   *pathNode
	children map[string]*pathNode
	order    []*pathNode // first-seen order

	leaf  bool // a primitive was seen at this path
	width int  // reserved columns, set by analyze

	cols map[int]int // header level -> column labelled by this node
}

func newPathTree() *pathNode {
	return &pathNode{}
}

func (n *pathNode) isRoot() bool { return n.parent == nil }

// child returns the node for key, creating it on first use.
func (n *pathNode) child(key string) *pathNode {
	if c, ok := n.children[key]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*pathNode)
	}
	c := &pathNode{key: key, parent: n}
	n.children[key] = c
	n.order = append(n.order, c)
	return c
}

// segments returns the keys from the root down to n.
func (n *pathNode) segments() []string {
	var segs []string
	for p := n; !p.isRoot(); p = p.parent {
		segs = append(segs, p.key)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return segs
}

// path returns the dotted path of n. The root path is "".
func (n *pathNode) path() string {
	return strings.Join(n.segments(), ".")
}

// relativeTo returns the dotted path of n below ancestor a.
func (n *pathNode) relativeTo(a *pathNode) string {
	var segs []string
	for p := n; p != a && !p.isRoot(); p = p.parent {
		segs = append(segs, p.key)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, ".")
}

// isAncestorOf reports whether n is a strict ancestor of m.
func (n *pathNode) isAncestorOf(m *pathNode) bool {
	for p := m.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// reservedWidth returns the number of columns n claims in a header row.
// The root stands for bare primitive records and always takes one column.
func (n *pathNode) reservedWidth() int {
	if n.isRoot() || n.width < 1 {
		return 1
	}
	return n.width
}

// column returns the column n labels at the first header level in
// [0, maxLevel] where it appears.
func (n *pathNode) column(maxLevel int) (int, bool) {
	for l := 0; l <= maxLevel; l++ {
		if c, ok := n.cols[l]; ok {
			return c, true
		}
	}
	return 0, false
}

func (n *pathNode) place(level, col int) {
	if n.cols == nil {
		n.cols = make(map[int]int)
	}
	n.cols[level] = col
}
