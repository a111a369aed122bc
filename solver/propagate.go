package solver

import (
	"errors"
	"sort"

	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/line"
)

// lineRef identifies one row or column of the puzzle.
type lineRef struct {
	column bool
	index  int
}

// propagator runs line deduction over a FIFO dirty-line queue until the
// queue drains (fixpoint) or some line admits no pattern. Scratch
// buffers are reused across lines to keep the hot loop allocation-free.
type propagator struct {
	p       *Puzzle
	queue   []lineRef
	queuedR []bool
	queuedC []bool
	buf     []grid.CellState
	idx     []int
}

// Propagate drives the puzzle's grid to a deduction fixpoint.
//
// Contracts:
//   - Starts with every row and column dirty; a cell write re-queues the
//     perpendicular line unless it is already queued or fully determined.
//   - Returns Solved when no Unknown cell remains, Stalled at a fixpoint
//     with Unknowns left, Contradiction when a line has zero consistent
//     patterns. Contradiction is a Status, not an error: during search it
//     is branch-local.
//   - Idempotent: re-running on a Stalled grid forces nothing new and
//     returns Stalled again.
//
// The non-nil error arm is reserved for malformed clues that bypassed
// NewPuzzle validation.
//
// Complexity: O(passes · (W+H) · line DP); every productive pass
// determines at least one cell.
func Propagate(p *Puzzle) (Status, error) {
	return newPropagator(p).run()
}

func newPropagator(p *Puzzle) *propagator {
	w, h := p.Width(), p.Height()
	longest := w
	if h > longest {
		longest = h
	}
	pr := &propagator{
		p:       p,
		queue:   make([]lineRef, 0, w+h),
		queuedR: make([]bool, h),
		queuedC: make([]bool, w),
		buf:     make([]grid.CellState, 0, longest),
	}
	for i := 0; i < h; i++ {
		pr.enqueue(lineRef{column: false, index: i})
	}
	for j := 0; j < w; j++ {
		pr.enqueue(lineRef{column: true, index: j})
	}

	return pr
}

// enqueue marks ref dirty and appends it, unless already queued.
func (pr *propagator) enqueue(ref lineRef) {
	queued := pr.queuedR
	if ref.column {
		queued = pr.queuedC
	}
	if queued[ref.index] {
		return
	}
	queued[ref.index] = true
	pr.queue = append(pr.queue, ref)
}

// view resolves ref against the grid. Indices come from the clue lists,
// so the error arm is unreachable; kept explicit for the contract.
func (pr *propagator) view(ref lineRef) (grid.LineView, error) {
	if ref.column {
		return pr.p.g.Column(ref.index)
	}

	return pr.p.g.Row(ref.index)
}

// clue returns the clue constraining ref.
func (pr *propagator) clue(ref lineRef) line.Clue {
	if ref.column {
		return pr.p.cols[ref.index]
	}

	return pr.p.rows[ref.index]
}

func (pr *propagator) run() (Status, error) {
	for len(pr.queue) > 0 {
		ref := pr.queue[0]
		pr.queue = pr.queue[1:]
		if ref.column {
			pr.queuedC[ref.index] = false
		} else {
			pr.queuedR[ref.index] = false
		}

		v, err := pr.view(ref)
		if err != nil {
			return Stalled, err
		}
		pr.buf = v.States(pr.buf)

		forced, err := line.Solve(pr.clue(ref), pr.buf)
		if errors.Is(err, line.ErrContradiction) {
			return Contradiction, nil
		}
		if err != nil {
			return Stalled, err
		}
		if len(forced) == 0 {
			continue
		}

		// Apply in ascending cell order; the fixpoint is confluent, this
		// just keeps queue contents reproducible run to run.
		pr.idx = pr.idx[:0]
		for i := range forced {
			pr.idx = append(pr.idx, i)
		}
		sort.Ints(pr.idx)
		for _, i := range pr.idx {
			if err = v.Set(i, forced[i]); err != nil {
				return Stalled, err
			}
			pr.requeuePerpendicular(ref, i)
		}
	}

	if pr.p.g.Unknowns() == 0 {
		return Solved, nil
	}

	return Stalled, nil
}

// requeuePerpendicular marks the line crossing ref at cell i dirty.
// A fully determined crossing line is never re-enqueued: its last
// deduction pass left the written cell ambiguous, so either terminal
// value completes one of its valid patterns.
func (pr *propagator) requeuePerpendicular(ref lineRef, i int) {
	perp := lineRef{column: !ref.column, index: i}
	v, err := pr.view(perp)
	if err != nil || !v.HasUnknown() {
		return
	}
	pr.enqueue(perp)
}
