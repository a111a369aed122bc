// Package nonogrid solves nonogram (picture logic) puzzles: given
// run-length clues for every row and column, it reconstructs the grid of
// filled and empty cells that satisfies all of them.
//
// 🚀 What is nonogrid?
//
//	A small, deterministic constraint-solving library that combines:
//		• Line deduction: a run-placement DP that derives every cell a
//		  single clue forces, without enumerating patterns
//		• Constraint propagation: a dirty-line work queue driven to a
//		  fixpoint across all rows and columns
//		• Backtracking search: propagate-then-branch with full grid
//		  checkpoints when deduction alone stalls
//
// ✨ Why choose nonogrid?
//
//   - Deterministic – identical clues always yield the identical grid
//   - Explicit outcomes – solved, unsatisfiable and malformed inputs are
//     distinct, errors.Is-matchable results, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – guess ordering and search budgets via options structs
//
// Everything is organized under four subpackages:
//
//	grid/   — CellState, the shared Grid, line views and checkpoints
//	line/   — Clue validation and single-line forced-cell deduction
//	solver/ — propagation fixpoint, backtracking search, Solve entry point
//	render/ — text rendering and 0/1 bitmap export of solved grids
//
// Quick ASCII example, a 5×5 puzzle and its solution:
//
//	cols: (1,2) (4) (2,2) (1) (1)        ░░███
//	rows: (3) (3) (1) (3) (3)      ⇒     ███░░
//	                                     ░█░░░
//	                                     ███░░
//	                                     ███░░
//
// Dive into the package docs for contracts, complexity notes and the
// error taxonomy of each stage.
//
//	go get github.com/katalvlaran/nonogrid
package nonogrid
