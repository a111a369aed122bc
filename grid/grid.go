package grid

// Grid is a rectangular matrix of cell states backed by a single flat
// row-major slice. Dimensions are fixed at construction; every cell
// starts as Unknown.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// Checkpoint is a full copy of a grid's cell states, used to undo the
// effects of one search guess. It is only valid for the grid (shape)
// that produced it.
type Checkpoint struct {
	rows, cols int
	cells      []CellState
}

// New constructs an all-Unknown rows×cols grid.
// Returns ErrBadDimensions unless both dimensions are positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r,c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// At returns the state of cell (r,c), or ErrOutOfRange.
func (g *Grid) At(r, c int) (CellState, error) {
	if !g.InBounds(r, c) {
		return Unknown, ErrOutOfRange
	}

	return g.cells[g.Index(r, c)], nil
}

// Set writes the state of cell (r,c), or returns ErrOutOfRange.
// Writing Unknown is legal and is how Restore rewinds a guess.
func (g *Grid) Set(r, c int, s CellState) error {
	if !g.InBounds(r, c) {
		return ErrOutOfRange
	}
	g.cells[g.Index(r, c)] = s

	return nil
}

// Unknowns counts cells still in the Unknown state.
// Complexity: O(rows×cols).
func (g *Grid) Unknowns() int {
	n := 0
	for _, s := range g.cells {
		if s == Unknown {
			n++
		}
	}

	return n
}

// FirstUnknown returns the coordinates of the first Unknown cell in
// row-major order, or ok=false when the grid is fully determined.
// Complexity: O(rows×cols).
func (g *Grid) FirstUnknown() (r, c int, ok bool) {
	for i, s := range g.cells {
		if s == Unknown {
			r, c = g.Coordinate(i)

			return r, c, true
		}
	}

	return 0, 0, false
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := make([]CellState, len(g.cells))
	copy(cp, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cp}
}

// Snapshot captures the current cell states into a Checkpoint.
// Complexity: O(rows×cols).
func (g *Grid) Snapshot() Checkpoint {
	cp := make([]CellState, len(g.cells))
	copy(cp, g.cells)

	return Checkpoint{rows: g.rows, cols: g.cols, cells: cp}
}

// Restore rewinds the grid to the states captured by cp.
// Returns ErrShapeMismatch if cp was taken from a grid of another shape.
// Complexity: O(rows×cols).
func (g *Grid) Restore(cp Checkpoint) error {
	if cp.rows != g.rows || cp.cols != g.cols || len(cp.cells) != len(g.cells) {
		return ErrShapeMismatch
	}
	copy(g.cells, cp.cells)

	return nil
}
