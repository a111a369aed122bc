package grid

// LineView projects one row or column of a Grid as a 1-D sequence.
// It aliases the grid's backing slice: reads and writes go straight
// through to the shared state, so deduction never copies the grid.
// The zero LineView is invalid; obtain views from Grid.Row / Grid.Column.
type LineView struct {
	g      *Grid
	start  int // flat index of element 0
	stride int // flat distance between consecutive elements
	n      int // number of elements
}

// Row returns a view of row r, or ErrOutOfRange.
// Complexity: O(1); the view shares the grid's storage.
func (g *Grid) Row(r int) (LineView, error) {
	if r < 0 || r >= g.rows {
		return LineView{}, ErrOutOfRange
	}

	return LineView{g: g, start: r * g.cols, stride: 1, n: g.cols}, nil
}

// Column returns a view of column c, or ErrOutOfRange.
// Complexity: O(1); the view shares the grid's storage.
func (g *Grid) Column(c int) (LineView, error) {
	if c < 0 || c >= g.cols {
		return LineView{}, ErrOutOfRange
	}

	return LineView{g: g, start: c, stride: g.cols, n: g.rows}, nil
}

// Len returns the number of cells in the line.
func (v LineView) Len() int { return v.n }

// At returns the state of cell i within the line, or ErrOutOfRange.
func (v LineView) At(i int) (CellState, error) {
	if i < 0 || i >= v.n {
		return Unknown, ErrOutOfRange
	}

	return v.g.cells[v.start+i*v.stride], nil
}

// Set writes the state of cell i within the line, or ErrOutOfRange.
// The write lands in the underlying grid.
func (v LineView) Set(i int, s CellState) error {
	if i < 0 || i >= v.n {
		return ErrOutOfRange
	}
	v.g.cells[v.start+i*v.stride] = s

	return nil
}

// States appends the line's current cell states to dst (resetting its
// length first) and returns the extended slice. Reusing one buffer
// across calls keeps the propagation hot loop allocation-free.
// Complexity: O(Len).
func (v LineView) States(dst []CellState) []CellState {
	dst = dst[:0]
	for i := 0; i < v.n; i++ {
		dst = append(dst, v.g.cells[v.start+i*v.stride])
	}

	return dst
}

// HasUnknown reports whether any cell in the line is still Unknown.
// Complexity: O(Len).
func (v LineView) HasUnknown() bool {
	for i := 0; i < v.n; i++ {
		if v.g.cells[v.start+i*v.stride] == Unknown {
			return true
		}
	}

	return false
}
