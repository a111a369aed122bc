// Package grid defines cell states and sentinel errors for the grid
// subpackage of github.com/katalvlaran/nonogrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates requested rows or cols is not positive.
	ErrBadDimensions = errors.New("grid: dimensions must be > 0")
	// ErrOutOfRange indicates a cell or line index is outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates a checkpoint taken from a grid of a
	// different shape.
	ErrShapeMismatch = errors.New("grid: checkpoint shape mismatch")
)

// CellState is the knowledge recorded for one cell. Unknown is the zero
// value; a cell leaves Unknown only by deduction or by a search guess,
// and returns to it only through a checkpoint Restore.
type CellState uint8

const (
	// Unknown means the cell's value has not been determined yet.
	Unknown CellState = iota
	// Filled means the cell belongs to a clue run.
	Filled
	// Empty means the cell belongs to no run.
	Empty
)

// String returns a one-character representation: "?" / "#" / ".".
func (s CellState) String() string {
	switch s {
	case Filled:
		return "#"
	case Empty:
		return "."
	default:
		return "?"
	}
}
