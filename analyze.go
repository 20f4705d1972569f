package jsontab

// analyze builds the path trie for every record and computes reserved
// widths. A compound path reserves one column per distinct leaf path below
// it across all records, so a field present in only some records still
// keeps its slot under its parent everywhere.
func analyze(records []Value) *pathNode {
	root := newPathTree()
	for _, r := range records {
		collect(root, r)
	}
	measure(root)
	return root
}

func collect(n *pathNode, v Value) {
	switch v.Kind() {
	case KindObject:
		for _, f := range v.Fields() {
			collect(n.child(f.Key), f.Value)
		}
	case KindArray:
		for _, item := range v.Items() {
			collect(n, item)
		}
	default:
		n.leaf = true
	}
}

// measure sets n.width and returns the number of leaf paths in n's subtree,
// n included.
func measure(n *pathNode) int {
	below := 0
	for _, c := range n.order {
		below += measure(c)
	}
	n.width = max(below, 1)
	if n.leaf {
		return below + 1
	}
	return below
}
