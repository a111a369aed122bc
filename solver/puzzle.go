package solver

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/line"
)

// Puzzle pairs the clue lists with the single Grid they constrain.
// Column clues index columns left to right; row clues index rows top to
// bottom. The Puzzle owns its Grid exclusively: the engine mutates it in
// place and the caller reads it back once solving finishes.
type Puzzle struct {
	cols []line.Clue
	rows []line.Clue
	g    *grid.Grid
}

// NewPuzzle builds a Puzzle from column clues and row clues. Grid
// dimensions derive from the clue-list lengths: len(rows)×len(cols).
// Every clue is shape-validated eagerly, before any solving: a clue
// whose runs plus mandatory gaps exceed its line is rejected here with
// line.ErrClueTooLong (wrapped with the offending line), not discovered
// mid-search.
// Complexity: O(total clue runs) + O(W×H) for the grid.
func NewPuzzle(cols, rows []line.Clue) (*Puzzle, error) {
	if len(cols) == 0 || len(rows) == 0 {
		return nil, ErrEmptyPuzzle
	}
	height, width := len(rows), len(cols)
	for j, c := range cols {
		if err := c.Validate(height); err != nil {
			return nil, fmt.Errorf("solver: column %d: %w", j, err)
		}
	}
	for i, c := range rows {
		if err := c.Validate(width); err != nil {
			return nil, fmt.Errorf("solver: row %d: %w", i, err)
		}
	}

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}

	// Defensive copies: clues are immutable once owned by the puzzle.
	p := &Puzzle{
		cols: make([]line.Clue, width),
		rows: make([]line.Clue, height),
		g:    g,
	}
	for j, c := range cols {
		p.cols[j] = append(line.Clue(nil), c...)
	}
	for i, c := range rows {
		p.rows[i] = append(line.Clue(nil), c...)
	}

	return p, nil
}

// NewPuzzleSized builds a Puzzle for declared dimensions, rejecting
// clue lists whose lengths disagree with them (ErrShapeMismatch).
func NewPuzzleSized(width, height int, cols, rows []line.Clue) (*Puzzle, error) {
	if len(cols) != width || len(rows) != height {
		return nil, ErrShapeMismatch
	}

	return NewPuzzle(cols, rows)
}

// Grid exposes the puzzle's grid. Mutating it mid-solve is the caller's
// own risk; it is intended for reading results and for rendering.
func (p *Puzzle) Grid() *grid.Grid { return p.g }

// Width returns the number of columns.
func (p *Puzzle) Width() int { return len(p.cols) }

// Height returns the number of rows.
func (p *Puzzle) Height() int { return len(p.rows) }

// ColumnClue returns the clue of column j.
func (p *Puzzle) ColumnClue(j int) line.Clue { return p.cols[j] }

// RowClue returns the clue of row i.
func (p *Puzzle) RowClue(i int) line.Clue { return p.rows[i] }
