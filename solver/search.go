package solver

import (
	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/line"
)

// engine holds the search state for one solve: the puzzle under
// mutation, the policy, and the running guess count for the budget.
// A dedicated struct (instead of closures) keeps the hot-path state
// explicit, mirroring the propagator.
type engine struct {
	p       *Puzzle
	opts    Options
	guesses int
	buf     []grid.CellState
}

// Solve is the library's sole solving entry point: it builds a Puzzle
// from the clue lists (validating shapes eagerly), runs propagation and
// backtracking search, and returns the solved grid.
//
// Outcomes:
//   - (grid, nil) on success; the grid satisfies every clue.
//   - ErrUnsatisfiable when no grid satisfies the clues.
//   - ErrEmptyPuzzle / line.ErrClueTooLong / line.ErrRunNotPositive for
//     malformed input, before any solving.
//   - ErrGuessBudget when Options.MaxGuesses ran out.
//
// Deterministic: identical clues and options yield the identical grid.
func Solve(cols, rows []line.Clue, opts Options) (*grid.Grid, error) {
	p, err := NewPuzzle(cols, rows)
	if err != nil {
		return nil, err
	}
	if err = SolvePuzzle(p, opts); err != nil {
		return nil, err
	}

	return p.Grid(), nil
}

// SolvePuzzle runs the search on a caller-built Puzzle, mutating its
// grid in place. On ErrUnsatisfiable or ErrGuessBudget the grid is
// restored to its pre-search states rather than left mid-branch.
func SolvePuzzle(p *Puzzle, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	longest := p.Width()
	if p.Height() > longest {
		longest = p.Height()
	}
	e := &engine{p: p, opts: opts, buf: make([]grid.CellState, 0, longest)}

	before := p.g.Snapshot()
	ok, err := e.search()
	if err != nil || !ok {
		// Failed searches must not leak a half-explored branch.
		_ = p.g.Restore(before)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnsatisfiable
	}

	return nil
}

// search is one node of the propagate-then-branch walk: drive deduction
// to a fixpoint, then guess a cell and recurse, Filled branch first.
// The checkpoint taken around the guess is restored on both failed
// branches and before every error return, so no exit path leaks a
// guessed state.
func (e *engine) search() (bool, error) {
	st, err := Propagate(e.p)
	if err != nil {
		return false, err
	}
	switch st {
	case Solved:
		return true, nil
	case Contradiction:
		return false, nil
	}

	if e.opts.MaxGuesses > 0 && e.guesses >= e.opts.MaxGuesses {
		return false, ErrGuessBudget
	}
	e.guesses++

	r, c := e.pickCell()
	cp := e.p.g.Snapshot()
	for _, guess := range [2]grid.CellState{grid.Filled, grid.Empty} {
		if err = e.p.g.Set(r, c, guess); err != nil {
			return false, err
		}
		ok, err := e.search()
		if err != nil {
			_ = e.p.g.Restore(cp)

			return false, err
		}
		if ok {
			return true, nil
		}
		if err = e.p.g.Restore(cp); err != nil {
			return false, err
		}
	}

	return false, nil
}

// pickCell chooses the cell to guess, per Options.Pick. Only called at
// a stall, so at least one Unknown cell exists.
func (e *engine) pickCell() (r, c int) {
	if e.opts.Pick == PickMostConstrained {
		if ref, ok := e.mostConstrainedLine(); ok {
			return e.firstUnknownIn(ref)
		}
	}
	r, c, _ = e.p.g.FirstUnknown()

	return r, c
}

// mostConstrainedLine scans rows then columns, keeping the undetermined
// line with the fewest clue-consistent placements (index tiebreak).
// Mirrors ranking candidate lines by remaining pattern count before
// falling back to a blind cell guess.
func (e *engine) mostConstrainedLine() (lineRef, bool) {
	var (
		best      lineRef
		bestCount int
		found     bool
	)
	consider := func(ref lineRef, cl line.Clue, v grid.LineView) {
		if !v.HasUnknown() {
			return
		}
		e.buf = v.States(e.buf)
		n := line.CountPlacements(cl, e.buf)
		if !found || n < bestCount {
			best, bestCount, found = ref, n, true
		}
	}
	for i := 0; i < e.p.Height(); i++ {
		v, err := e.p.g.Row(i)
		if err != nil {
			continue
		}
		consider(lineRef{column: false, index: i}, e.p.rows[i], v)
	}
	for j := 0; j < e.p.Width(); j++ {
		v, err := e.p.g.Column(j)
		if err != nil {
			continue
		}
		consider(lineRef{column: true, index: j}, e.p.cols[j], v)
	}

	return best, found
}

// firstUnknownIn returns the grid coordinates of the first Unknown cell
// of the given line.
func (e *engine) firstUnknownIn(ref lineRef) (r, c int) {
	v, err := e.view(ref)
	if err != nil {
		r, c, _ = e.p.g.FirstUnknown()

		return r, c
	}
	for i := 0; i < v.Len(); i++ {
		s, err := v.At(i)
		if err == nil && s == grid.Unknown {
			if ref.column {
				return i, ref.index
			}

			return ref.index, i
		}
	}
	r, c, _ = e.p.g.FirstUnknown()

	return r, c
}

// view resolves ref against the puzzle grid.
func (e *engine) view(ref lineRef) (grid.LineView, error) {
	if ref.column {
		return e.p.g.Column(ref.index)
	}

	return e.p.g.Row(ref.index)
}
