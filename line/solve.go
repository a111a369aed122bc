package line

import "github.com/katalvlaran/nonogrid/grid"

// Solve computes every cell of the line whose value is forced by the
// clue together with the already-known cells, without materializing
// patterns. Cells already Filled/Empty in cells are hard constraints;
// Unknown cells are unconstrained.
//
// Returns:
//   - a possibly-empty ForcedUpdate over Unknown cells, or
//   - ErrContradiction when no pattern is consistent, or
//   - ErrRunNotPositive / ErrClueTooLong for a malformed clue.
//
// Complexity: O(n·k·maxRun) time, O(n·k) memory.
func Solve(c Clue, cells []grid.CellState) (ForcedUpdate, error) {
	n := len(cells)
	if err := c.Validate(n); err != nil {
		return nil, err
	}
	k := len(c)

	d := newPlacementDP(c, cells)
	if !d.completable[0][0] {
		return nil, ErrContradiction
	}

	// canFilled[i] / canEmpty[i]: some fully consistent pattern assigns
	// that value at cell i. Derived by joining reachable prefixes with
	// completable suffixes at every Empty step and run placement.
	canFilled := make([]bool, n)
	canEmpty := make([]bool, n)
	for i := 0; i <= n; i++ {
		for j := 0; j <= k; j++ {
			if !d.reachable[i][j] {
				continue
			}
			if i < n && cells[i] != grid.Filled && d.completable[i+1][j] {
				canEmpty[i] = true
			}
			if j < k && d.runFits(i, j) {
				e := i + c[j]
				ok := false
				switch {
				case e == n:
					ok = d.completable[n][j+1]
				case cells[e] != grid.Filled:
					ok = d.completable[e+1][j+1]
				}
				if ok {
					for p := i; p < e; p++ {
						canFilled[p] = true
					}
					if e < n {
						// The mandatory separator after the run.
						canEmpty[e] = true
					}
				}
			}
		}
	}

	forced := make(ForcedUpdate)
	for i := 0; i < n; i++ {
		if cells[i] != grid.Unknown {
			continue
		}
		switch {
		case canFilled[i] && !canEmpty[i]:
			forced[i] = grid.Filled
		case canEmpty[i] && !canFilled[i]:
			forced[i] = grid.Empty
		}
	}

	return forced, nil
}

// placementDP holds the two reachability tables of the run-placement DP.
// State (i,j) means: i cells consumed, j runs placed, and a run may
// start at cell i (any preceding run is already separated).
type placementDP struct {
	clue  Clue
	cells []grid.CellState
	// completable[i][j]: cells[i:] can realize runs clue[j:].
	completable [][]bool
	// reachable[i][j]: some consistent assignment of cells[:i] uses
	// exactly runs clue[:j].
	reachable [][]bool
}

// runFits reports whether run j may occupy cells [i, i+clue[j]): it must
// stay inside the line and cover no known-Empty cell. Boundary cells are
// checked by the caller's transition, not here.
func (d *placementDP) runFits(i, j int) bool {
	r := d.clue[j]
	if i+r > len(d.cells) {
		return false
	}
	for p := i; p < i+r; p++ {
		if d.cells[p] == grid.Empty {
			return false
		}
	}

	return true
}

// newPlacementDP fills both tables. Transitions from state (i,j):
//   - Empty step: cell i is Empty → (i+1, j); requires cells[i] != Filled.
//   - Run step: run j occupies [i, i+clue[j]) followed by one separator
//     Empty (absent at the line end) → (i+clue[j]+1, j+1) or (n, j+1).
func newPlacementDP(c Clue, cells []grid.CellState) *placementDP {
	n, k := len(cells), len(c)
	d := &placementDP{clue: c, cells: cells}

	d.completable = make([][]bool, n+1)
	for i := range d.completable {
		d.completable[i] = make([]bool, k+1)
	}
	// Suffix with no runs left: legal iff it holds no Filled cell.
	d.completable[n][k] = true
	for i := n - 1; i >= 0; i-- {
		d.completable[i][k] = d.completable[i+1][k] && cells[i] != grid.Filled
	}
	for j := k - 1; j >= 0; j-- {
		for i := n - 1; i >= 0; i-- {
			if cells[i] != grid.Filled && d.completable[i+1][j] {
				d.completable[i][j] = true

				continue
			}
			if d.runFits(i, j) {
				e := i + c[j]
				switch {
				case e == n:
					d.completable[i][j] = d.completable[n][j+1]
				case cells[e] != grid.Filled:
					d.completable[i][j] = d.completable[e+1][j+1]
				}
			}
		}
	}

	d.reachable = make([][]bool, n+1)
	for i := range d.reachable {
		d.reachable[i] = make([]bool, k+1)
	}
	d.reachable[0][0] = true
	for i := 0; i <= n; i++ {
		for j := 0; j <= k; j++ {
			if !d.reachable[i][j] {
				continue
			}
			if i < n && cells[i] != grid.Filled {
				d.reachable[i+1][j] = true
			}
			if j < k && d.runFits(i, j) {
				e := i + c[j]
				switch {
				case e == n:
					d.reachable[n][j+1] = true
				case cells[e] != grid.Filled:
					d.reachable[e+1][j+1] = true
				}
			}
		}
	}

	return d
}
