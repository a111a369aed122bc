package line

import "github.com/katalvlaran/nonogrid/grid"

// maxCount saturates placement counting; lines this ambiguous are
// equally bad guessing targets, exact totals add nothing.
const maxCount = 1 << 30

// CountPlacements returns the number of patterns consistent with both
// the clue and the already-known cells, saturating at a large bound.
// A malformed clue counts as zero. The search uses this to rank lines:
// fewer placements, better guess.
// Complexity: O(n·k) time, O(n·k) memory.
func CountPlacements(c Clue, cells []grid.CellState) int {
	n := len(cells)
	if c.Validate(n) != nil {
		return 0
	}
	k := len(c)

	// count[i][j]: patterns realizing runs c[j:] over cells[i:].
	// Same transitions as the placement DP, counted instead of OR-ed.
	count := make([][]int, n+1)
	for i := range count {
		count[i] = make([]int, k+1)
	}
	count[n][k] = 1
	for i := n - 1; i >= 0; i-- {
		if cells[i] != grid.Filled {
			count[i][k] = count[i+1][k]
		}
	}
	d := &placementDP{clue: c, cells: cells}
	for j := k - 1; j >= 0; j-- {
		for i := n - 1; i >= 0; i-- {
			total := 0
			if cells[i] != grid.Filled {
				total += count[i+1][j]
			}
			if d.runFits(i, j) {
				e := i + c[j]
				switch {
				case e == n:
					total += count[n][j+1]
				case cells[e] != grid.Filled:
					total += count[e+1][j+1]
				}
			}
			if total > maxCount {
				total = maxCount
			}
			count[i][j] = total
		}
	}

	return count[0][0]
}

// Enumerate materializes patterns matching the clue over a blank line of
// the given length, in lexicographic order of run positions. At most max
// patterns are produced when max > 0; max <= 0 means no cap. Mostly a
// ground-truth oracle for Solve in tests; prefer CountPlacements in
// production paths.
// Complexity: exponential in k for ambiguous lines; always cap.
func Enumerate(c Clue, length, max int) ([][]grid.CellState, error) {
	if err := c.Validate(length); err != nil {
		return nil, err
	}

	var out [][]grid.CellState
	prefix := make([]grid.CellState, 0, length)
	emit(c, length, max, prefix, &out)

	return out, nil
}

// emit recursively places the first run at every legal offset and
// recurses on the remainder, mirroring the reserved-space bound of the
// placement DP.
func emit(c Clue, length, max int, prefix []grid.CellState, out *[][]grid.CellState) {
	if max > 0 && len(*out) >= max {
		return
	}
	if len(c) == 0 {
		full := make([]grid.CellState, 0, len(prefix)+length)
		full = append(full, prefix...)
		for i := 0; i < length; i++ {
			full = append(full, grid.Empty)
		}
		*out = append(*out, full)

		return
	}

	rest := Clue(c[1:])
	reserved := rest.MinLength()
	if len(rest) > 0 {
		reserved++ // separator between run 0 and run 1
	}
	for off := 0; off+c[0]+reserved <= length; off++ {
		// Fresh backing array per branch; sibling branches must not
		// clobber each other through a shared append buffer.
		next := make([]grid.CellState, len(prefix), len(prefix)+length)
		copy(next, prefix)
		for i := 0; i < off; i++ {
			next = append(next, grid.Empty)
		}
		for i := 0; i < c[0]; i++ {
			next = append(next, grid.Filled)
		}
		consumed := off + c[0]
		if len(rest) > 0 {
			next = append(next, grid.Empty)
			consumed++
		}
		emit(rest, length-consumed, max, next, out)
	}
}
