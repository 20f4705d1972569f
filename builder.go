package jsontab

// Grid is a flattened document: one or more header rows labelling the
// columns, followed by data rows. Build one with [Flatten].
type Grid struct {
	tree    *pathNode
	headers [][]*pathNode // header rows; nil cells are blank
	level   int           // header row new columns resolve against
	data    [][]string
	cols    int
}

func newGrid(tree *pathNode) *Grid {
	return &Grid{
		tree:    tree,
		headers: [][]*pathNode{{}},
	}
}

// HeaderSize returns the number of header rows.
func (g *Grid) HeaderSize() int { return len(g.headers) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cols }

// Len returns the number of data rows.
func (g *Grid) Len() int { return len(g.data) }

// Headers returns the header rows. With dedup, a label drops the leading
// path it shares with a label in an upper header row, so "user.address.city"
// under "user" and "user.address" reads "city".
func (g *Grid) Headers(dedup bool) [][]string {
	out := make([][]string, len(g.headers))
	upper := make(map[*pathNode]bool)
	for y, row := range g.headers {
		labels := make([]string, g.cols)
		for x, n := range row {
			if n != nil {
				labels[x] = headerLabel(n, upper, dedup)
			}
		}
		for _, n := range row {
			if n != nil {
				upper[n] = true
			}
		}
		out[y] = labels
	}
	return out
}

func headerLabel(n *pathNode, upper map[*pathNode]bool, dedup bool) string {
	if dedup {
		for p := n.parent; p != nil && !p.isRoot(); p = p.parent {
			if upper[p] {
				return n.relativeTo(p)
			}
		}
	}
	return n.path()
}

// Rows returns a copy of the data rows. Blank cells are "".
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.data))
	for i, row := range g.data {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// header returns the column labelled by n in the current header row,
// placing it first if needed.
//
// At the top level n reserves its width at the end of the row. Below it, n
// takes the first free run of its width inside the span its parent
// reserved; a parent that cannot be found or a span with no room left sends
// n to the end of the row instead.
func (g *Grid) header(n *pathNode) int {
	if c, ok := n.cols[g.level]; ok {
		return c
	}
	for len(g.headers) <= g.level {
		g.headers = append(g.headers, make([]*pathNode, g.cols))
	}
	w := n.reservedWidth()
	if g.level > 0 && !n.isRoot() && !n.parent.isRoot() {
		if pcol, ok := n.parent.column(g.level); ok {
			end := min(pcol+n.parent.reservedWidth(), g.cols)
			if c, ok := g.freeSlot(n, pcol, end, w); ok {
				g.label(c, n)
				return c
			}
		}
	}
	c := g.addColumns(w)
	g.label(c, n)
	return c
}

// freeSlot finds the first column in [start, end) where w columns are
// not claimed by a sibling of n in any header row nor labelled in the
// current one.
func (g *Grid) freeSlot(n *pathNode, start, end, w int) (int, bool) {
	if end-start < w {
		return 0, false
	}
	taken := make([]bool, end-start)
	for _, s := range n.parent.order {
		if s == n {
			continue
		}
		sw := s.reservedWidth()
		for _, c := range s.cols {
			for x := max(c, start); x < min(c+sw, end); x++ {
				taken[x-start] = true
			}
		}
	}
	for x := start; x < end; x++ {
		if g.headers[g.level][x] != nil {
			taken[x-start] = true
		}
	}
	for c := start; c+w <= end; c++ {
		free := true
		for x := c; x < c+w; x++ {
			if taken[x-start] {
				free = false
				break
			}
		}
		if free {
			return c, true
		}
	}
	return 0, false
}

func (g *Grid) label(col int, n *pathNode) {
	g.headers[g.level][col] = n
	n.place(g.level, col)
}

// addColumns appends n blank columns to every row and returns the index
// of the first.
func (g *Grid) addColumns(n int) int {
	start := g.cols
	g.cols += n
	for i := range g.headers {
		g.headers[i] = append(g.headers[i], make([]*pathNode, n)...)
	}
	for i := range g.data {
		g.data[i] = append(g.data[i], make([]string, n)...)
	}
	return start
}

// enterChildLevel moves header resolution one row down. The row itself is
// added when the first label lands on it.
func (g *Grid) enterChildLevel() {
	g.level++
}

func (g *Grid) exitChildLevel() {
	g.level--
}

// beginRecord appends a blank data row and returns its index.
func (g *Grid) beginRecord() int {
	row := len(g.data)
	g.ensureRow(row)
	return row
}

func (g *Grid) ensureRow(row int) {
	for len(g.data) <= row {
		g.data = append(g.data, make([]string, g.cols))
	}
}

func (g *Grid) inject(row, col int, text string) {
	g.ensureRow(row)
	g.data[row][col] = text
}
