// Package solver defines statuses, options, and sentinel errors for the
// solver subpackage of github.com/katalvlaran/nonogrid.
package solver

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrEmptyPuzzle indicates no row clues or no column clues.
	ErrEmptyPuzzle = errors.New("solver: puzzle must have at least one row and one column")
	// ErrShapeMismatch indicates clue-list lengths that differ from the
	// declared column/row counts.
	ErrShapeMismatch = errors.New("solver: clue list length does not match declared size")
	// ErrUnsatisfiable indicates the puzzle admits no valid grid. This is
	// a routine, expected outcome, distinct from a solved grid.
	ErrUnsatisfiable = errors.New("solver: puzzle has no solution")
	// ErrGuessBudget indicates the MaxGuesses budget ran out before the
	// search finished; the grid is not returned partially solved.
	ErrGuessBudget = errors.New("solver: guess budget exhausted")
	// ErrBadOption indicates an invalid Options value.
	ErrBadOption = errors.New("solver: invalid option value")
)

// Status is the outcome of one propagation fixpoint.
type Status int

const (
	// Stalled means the fixpoint was reached with Unknown cells left;
	// deduction alone cannot proceed further.
	Stalled Status = iota
	// Solved means every cell is Filled or Empty.
	Solved
	// Contradiction means some line admits zero consistent patterns.
	// Branch-local during search: the caller backtracks.
	Contradiction
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	default:
		return "stalled"
	}
}

// PickRule selects which Unknown cell the search guesses at a stall.
// Every rule is deterministic, so a given puzzle always produces the
// same grid.
type PickRule int

const (
	// PickFirstUnknown guesses the first Unknown cell in row-major order.
	PickFirstUnknown PickRule = iota
	// PickMostConstrained guesses inside the undetermined line with the
	// fewest clue-consistent placements (rows before columns, lower
	// index first), taking its first Unknown cell.
	PickMostConstrained
)

// Options configures the search.
//
// Fields:
//   - Pick       — guessed-cell selection rule; see PickRule.
//   - MaxGuesses — soft budget on guesses made across the whole search;
//     when exceeded the solve aborts with ErrGuessBudget instead of
//     returning a partial grid. 0 disables the budget.
type Options struct {
	Pick       PickRule
	MaxGuesses int
}

// DefaultOptions returns the canonical configuration:
// PickFirstUnknown, no guess budget.
func DefaultOptions() Options {
	return Options{Pick: PickFirstUnknown, MaxGuesses: 0}
}

// validate rejects out-of-range option values.
func (o Options) validate() error {
	if o.Pick != PickFirstUnknown && o.Pick != PickMostConstrained {
		return ErrBadOption
	}
	if o.MaxGuesses < 0 {
		return ErrBadOption
	}

	return nil
}
