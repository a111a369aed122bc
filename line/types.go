// Package line defines the Clue type and sentinel errors for the line
// subpackage of github.com/katalvlaran/nonogrid.
package line

import (
	"errors"

	"github.com/katalvlaran/nonogrid/grid"
)

// Sentinel errors for line operations.
var (
	// ErrRunNotPositive indicates a clue run smaller than 1.
	ErrRunNotPositive = errors.New("line: clue runs must be >= 1")
	// ErrClueTooLong indicates the clue cannot fit the line: the sum of
	// its runs plus the mandatory single-cell gaps exceeds the length.
	ErrClueTooLong = errors.New("line: clue exceeds line length")
	// ErrContradiction indicates no pattern satisfies both the clue and
	// the already-known cells. During search this is branch-local, not
	// fatal: the caller backtracks.
	ErrContradiction = errors.New("line: no consistent pattern")
)

// Clue is the ordered sequence of run lengths required in one line,
// left-to-right for rows, top-to-bottom for columns. An empty Clue
// requires the line to be entirely Empty. Clues are treated as
// immutable once handed to the solver.
type Clue []int

// ForcedUpdate maps cell indices within a line to the value every
// consistent pattern assigns there. An empty update means the pass
// produced no new information.
type ForcedUpdate map[int]grid.CellState

// MinLength returns the shortest line the clue fits: the sum of its
// runs plus one mandatory gap between consecutive runs.
// Complexity: O(k).
func (c Clue) MinLength() int {
	if len(c) == 0 {
		return 0
	}
	total := len(c) - 1
	for _, r := range c {
		total += r
	}

	return total
}

// Validate checks the clue's shape against a line of the given length.
// Returns ErrRunNotPositive for any run < 1 and ErrClueTooLong when
// MinLength exceeds length. A valid clue may still be unsatisfiable
// against particular known cells; that is Solve's ErrContradiction.
// Complexity: O(k).
func (c Clue) Validate(length int) error {
	for _, r := range c {
		if r < 1 {
			return ErrRunNotPositive
		}
	}
	if c.MinLength() > length {
		return ErrClueTooLong
	}

	return nil
}
