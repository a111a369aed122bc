package solver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/line"
	"github.com/katalvlaran/nonogrid/render"
	"github.com/katalvlaran/nonogrid/solver"
)

// bitmapOf solves nothing: it converts an already-solved grid to 0/1
// rows for comparison.
func bitmapOf(t *testing.T, g *grid.Grid) [][]int {
	t.Helper()
	bm, err := render.Bitmap(g)
	require.NoError(t, err)

	return bm
}

// runsOf scans one solved line and returns its run-length sequence.
func runsOf(states []grid.CellState) line.Clue {
	var (
		runs line.Clue
		cur  int
	)
	for _, s := range states {
		if s == grid.Filled {
			cur++

			continue
		}
		if cur > 0 {
			runs = append(runs, cur)
			cur = 0
		}
	}
	if cur > 0 {
		runs = append(runs, cur)
	}

	return runs
}

// assertValid checks the solved grid against every clue: the run-length
// scan of each row and column must equal its clue exactly.
func assertValid(t *testing.T, g *grid.Grid, cols, rows []line.Clue) {
	t.Helper()
	buf := make([]grid.CellState, 0, g.Rows()+g.Cols())
	for i, want := range rows {
		v, err := g.Row(i)
		require.NoError(t, err)
		got := runsOf(v.States(buf))
		assert.Equal(t, append(line.Clue{}, want...), append(line.Clue{}, got...), "row %d", i)
	}
	for j, want := range cols {
		v, err := g.Column(j)
		require.NoError(t, err)
		got := runsOf(v.States(buf))
		assert.Equal(t, append(line.Clue{}, want...), append(line.Clue{}, got...), "column %d", j)
	}
}

//----------------------------------------------------------------------------//
// End-to-end scenarios
//----------------------------------------------------------------------------//

// TestSolve_FiveByFive solves the canonical 5×5 puzzle and pins the
// exact grid.
func TestSolve_FiveByFive(t *testing.T) {
	cols := []line.Clue{{1, 2}, {4}, {2, 2}, {1}, {1}}
	rows := []line.Clue{{3}, {3}, {1}, {3}, {3}}

	g, err := solver.Solve(cols, rows, solver.DefaultOptions())
	require.NoError(t, err)

	want := [][]int{
		{0, 0, 1, 1, 1},
		{1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0},
	}
	if diff := cmp.Diff(want, bitmapOf(t, g)); diff != "" {
		t.Errorf("solved grid mismatch (-want +got):\n%s", diff)
	}
	assertValid(t, g, cols, rows)
}

// TestSolve_OneByOne covers the smallest possible puzzle.
func TestSolve_OneByOne(t *testing.T) {
	g, err := solver.Solve([]line.Clue{{1}}, []line.Clue{{1}}, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, bitmapOf(t, g))
}

// TestSolve_AllEmpty checks that empty clues force an all-zero grid.
func TestSolve_AllEmpty(t *testing.T) {
	g, err := solver.Solve(
		[]line.Clue{{}, {}, {}},
		[]line.Clue{{}},
		solver.DefaultOptions(),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}}, bitmapOf(t, g))
}

// TestSolve_MalformedClue rejects a clue longer than its line before any
// solving: (3,3) needs 7 cells on a width-5 row.
func TestSolve_MalformedClue(t *testing.T) {
	cols := []line.Clue{{1}, {1}, {1}, {1}, {1}}
	rows := []line.Clue{{3, 3}}

	g, err := solver.Solve(cols, rows, solver.DefaultOptions())
	assert.ErrorIs(t, err, line.ErrClueTooLong)
	assert.Nil(t, g, "a malformed puzzle must never produce a grid")
}

// TestSolve_Unsatisfiable distinguishes "no solution" from malformed
// input: every clue fits its line, but no grid satisfies all of them.
func TestSolve_Unsatisfiable(t *testing.T) {
	g, err := solver.Solve(
		[]line.Clue{{2}, {2}},
		[]line.Clue{{1}, {1}},
		solver.DefaultOptions(),
	)
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
	assert.Nil(t, g)
}

// TestSolve_AmbiguousDeterministic solves a puzzle with two valid grids
// (the 2×2 diagonals) and expects the one picked by the documented rule:
// first Unknown cell in row-major order, Filled branch first.
func TestSolve_AmbiguousDeterministic(t *testing.T) {
	cols := []line.Clue{{1}, {1}}
	rows := []line.Clue{{1}, {1}}

	g, err := solver.Solve(cols, rows, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}}, bitmapOf(t, g))
	assertValid(t, g, cols, rows)
}

// TestSolve_Deterministic solves the same puzzle twice per pick rule and
// expects byte-identical grids.
func TestSolve_Deterministic(t *testing.T) {
	cols := []line.Clue{{1}, {1}, {1}, {1}}
	rows := []line.Clue{{1}, {1}, {1}, {1}}

	for _, rule := range []solver.PickRule{solver.PickFirstUnknown, solver.PickMostConstrained} {
		opts := solver.DefaultOptions()
		opts.Pick = rule

		a, err := solver.Solve(cols, rows, opts)
		require.NoError(t, err)
		b, err := solver.Solve(cols, rows, opts)
		require.NoError(t, err)

		if diff := cmp.Diff(bitmapOf(t, a), bitmapOf(t, b)); diff != "" {
			t.Errorf("rule %v: two solves disagree (-first +second):\n%s", rule, diff)
		}
		assertValid(t, a, cols, rows)
	}
}

// TestSolve_UnsatisfiableAfterSearch uses a puzzle that stalls first:
// every line is individually consistent (propagation finds a fixpoint
// with Unknowns left), but row totals want 4 filled cells and column
// totals only 3, so every guess branch dies. Exercises full
// backtracking with checkpoint restore on both branches.
func TestSolve_UnsatisfiableAfterSearch(t *testing.T) {
	cols := []line.Clue{{1}, {1}, {1}}
	rows := []line.Clue{{1}, {1}, {2}}

	g, err := solver.Solve(cols, rows, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
	assert.Nil(t, g)
}

//----------------------------------------------------------------------------//
// Options and construction errors
//----------------------------------------------------------------------------//

// TestSolve_GuessBudget aborts a deep search after one guess.
func TestSolve_GuessBudget(t *testing.T) {
	opts := solver.DefaultOptions()
	opts.MaxGuesses = 1

	_, err := solver.Solve(
		[]line.Clue{{1}, {1}, {1}, {1}},
		[]line.Clue{{1}, {1}, {1}, {1}},
		opts,
	)
	assert.ErrorIs(t, err, solver.ErrGuessBudget)
}

// TestSolvePuzzle_RestoresOnFailure checks the grid is rewound, not left
// mid-branch, when the search fails.
func TestSolvePuzzle_RestoresOnFailure(t *testing.T) {
	p, err := solver.NewPuzzle(
		[]line.Clue{{2}, {2}},
		[]line.Clue{{1}, {1}},
	)
	require.NoError(t, err)

	err = solver.SolvePuzzle(p, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
	assert.Equal(t, 4, p.Grid().Unknowns(), "failed solve must restore the pre-search grid")
}

// TestSolve_BadOptions rejects out-of-range option values.
func TestSolve_BadOptions(t *testing.T) {
	opts := solver.Options{Pick: solver.PickRule(42)}
	_, err := solver.Solve([]line.Clue{{1}}, []line.Clue{{1}}, opts)
	assert.ErrorIs(t, err, solver.ErrBadOption)

	opts = solver.Options{MaxGuesses: -1}
	_, err = solver.Solve([]line.Clue{{1}}, []line.Clue{{1}}, opts)
	assert.ErrorIs(t, err, solver.ErrBadOption)
}

// TestNewPuzzle_Errors covers empty and malformed construction.
func TestNewPuzzle_Errors(t *testing.T) {
	_, err := solver.NewPuzzle(nil, []line.Clue{{1}})
	assert.ErrorIs(t, err, solver.ErrEmptyPuzzle)

	_, err = solver.NewPuzzle([]line.Clue{{1}}, nil)
	assert.ErrorIs(t, err, solver.ErrEmptyPuzzle)

	_, err = solver.NewPuzzle([]line.Clue{{0}}, []line.Clue{{1}})
	assert.ErrorIs(t, err, line.ErrRunNotPositive)
}

// TestNewPuzzleSized enforces declared dimensions.
func TestNewPuzzleSized(t *testing.T) {
	cols := []line.Clue{{1}, {1}}
	rows := []line.Clue{{1}, {1}}

	p, err := solver.NewPuzzleSized(2, 2, cols, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Width())
	assert.Equal(t, 2, p.Height())

	_, err = solver.NewPuzzleSized(3, 2, cols, rows)
	assert.ErrorIs(t, err, solver.ErrShapeMismatch)
	_, err = solver.NewPuzzleSized(2, 1, cols, rows)
	assert.ErrorIs(t, err, solver.ErrShapeMismatch)
}

// TestPuzzle_Accessors sanity-checks clue accessors.
func TestPuzzle_Accessors(t *testing.T) {
	p, err := solver.NewPuzzle(
		[]line.Clue{{1, 2}, {4}},
		[]line.Clue{{2}, {1}, {1}, {2}},
	)
	require.NoError(t, err)
	assert.Equal(t, line.Clue{1, 2}, p.ColumnClue(0))
	assert.Equal(t, line.Clue{4}, p.ColumnClue(1))
	assert.Equal(t, line.Clue{2}, p.RowClue(3))
}
