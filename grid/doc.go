// Package grid holds the shared mutable state of a nonogram solve: a
// rectangular matrix of cell states, zero-copy views of its rows and
// columns, and full-copy checkpoints for backtracking.
//
// What:
//
//   - CellState: Unknown, Filled or Empty; Unknown is the zero value and
//     the only non-terminal state.
//   - Grid: fixed rows×cols matrix of CellState over a flat row-major
//     backing slice; dimensions never change after New.
//   - LineView: read/write projection of one row or column, so line
//     deduction never copies the whole grid.
//   - Checkpoint: a snapshot of all cell states, restored verbatim by
//     Restore; the backtracking search brackets every guess with one.
//
// Why:
//
//   - One Grid instance is the sole state of a solve; every stage of the
//     engine mutates it in place through explicit references.
//   - Views keep row and column deduction symmetric: both walk the same
//     flat buffer with a different stride.
//
// Complexity:
//
//   - At/Set/InBounds: O(1).
//   - Snapshot/Restore/Clone: O(rows×cols).
//   - Unknowns/FirstUnknown: O(rows×cols).
//
// Errors:
//
//   - ErrBadDimensions: requested rows or cols is not positive.
//   - ErrOutOfRange: a cell or line index is outside the grid.
//   - ErrShapeMismatch: a Checkpoint from a differently-shaped grid.
package grid
