package jsontab

// Flatten lays root out as a grid. An array's elements are the records; any
// other value is a single record.
func Flatten(root Value) *Grid {
	records := []Value{root}
	if root.Kind() == KindArray {
		records = root.Items()
	}
	g := newGrid(analyze(records))
	for _, r := range records {
		g.walk(r, g.tree, g.beginRecord())
	}
	return g
}

// walk writes v, found at path n, starting on data row row. It returns one
// past the last row v used.
//
// Fields of an object share its first row. The first element of an array
// also shares it; each later element starts on the row after the rows the
// previous element used.
func (g *Grid) walk(v Value, n *pathNode, row int) int {
	switch v.Kind() {
	case KindObject:
		return g.walkObject(v, n, row)
	case KindArray:
		if !n.isRoot() {
			g.header(n)
		}
		next := row
		for _, item := range v.Items() {
			next = g.walk(item, n, next)
		}
		return max(next, row+1)
	default:
		g.inject(row, g.header(n), v.Text())
		return row + 1
	}
}

func (g *Grid) walkObject(v Value, n *pathNode, row int) int {
	if !n.isRoot() {
		g.header(n)
		g.enterChildLevel()
		defer g.exitChildLevel()
	}
	var arrays []Field
	for _, f := range v.Fields() {
		if f.Value.Kind() == KindArray && f.Value.Len() > 0 {
			arrays = append(arrays, f)
		}
	}
	end := row + 1
	if len(arrays) < 2 {
		for _, f := range v.Fields() {
			end = max(end, g.walk(f.Value, n.child(f.Key), row))
		}
		return end
	}
	for _, f := range v.Fields() {
		if f.Value.Kind() != KindArray || f.Value.Len() == 0 {
			end = max(end, g.walk(f.Value, n.child(f.Key), row))
		}
	}
	return max(end, g.walkArrays(arrays, n, row))
}

// walkArrays lays out several non-empty array fields of one object so that
// their elements line up. Arrays of objects or arrays advance together:
// element i of each starts on the same row, below everything index i-1
// used. Arrays of primitives put element i on row+i.
func (g *Grid) walkArrays(arrays []Field, n *pathNode, row int) int {
	var complexArrays, primitiveArrays []Field
	longest := 0
	for _, f := range arrays {
		if f.Value.Items()[0].IsCompound() {
			complexArrays = append(complexArrays, f)
			longest = max(longest, f.Value.Len())
		} else {
			primitiveArrays = append(primitiveArrays, f)
		}
	}

	next := row
	for i := range longest {
		start := next
		next = start + 1
		for _, f := range complexArrays {
			items := f.Value.Items()
			if i >= len(items) {
				continue
			}
			c := n.child(f.Key)
			g.header(c)
			next = max(next, g.walk(items[i], c, start))
		}
	}
	end := max(next, row+1)

	for _, f := range primitiveArrays {
		c := n.child(f.Key)
		g.header(c)
		for i, item := range f.Value.Items() {
			end = max(end, g.walk(item, c, row+i))
		}
	}
	return end
}
