// Package solver drives a whole nonogram to a solution: constraint
// propagation over every row and column until a fixpoint, then
// depth-first guessing with checkpointed backtracking when deduction
// alone stalls.
//
// What:
//
//   - Puzzle: the column clues, row clues and the single owned Grid.
//   - Propagate: runs line deduction over a dirty-line work queue until
//     no line yields new information; reports Solved, Stalled or
//     Contradiction.
//   - Solve / SolvePuzzle: propagate-then-branch search. Each guess is
//     bracketed by a grid Checkpoint that is restored on failure and
//     dropped on success, on every exit path.
//
// Why:
//
//   - Propagation is monotone and confluent: forced cells are never
//     revised by later deduction, only confirmed, so queue order affects
//     speed, never the result.
//   - Branching on a single cell needs only two subtrees (Filled or
//     Empty); propagation prunes contradictory branches immediately
//     instead of at the leaves.
//
// Determinism:
//
//	Identical clues and options always yield the identical grid. The
//	guessed cell is chosen by a fixed rule (Options.Pick) and the Filled
//	branch is always tried first.
//
// Complexity:
//
//   - Propagate: O(passes · (W+H) · line DP); each pass determines at
//     least one cell or reaches the fixpoint.
//   - Search: worst case exponential in the number of unknown cells at
//     the first stall; propagation pruning keeps typical puzzles shallow.
//
// Options:
//
//   - Options.Pick: PickFirstUnknown (row-major) or PickMostConstrained
//     (line with fewest consistent placements first).
//   - Options.MaxGuesses: soft search budget; 0 means unlimited.
//
// Errors:
//
//   - ErrEmptyPuzzle: no row clues or no column clues.
//   - ErrShapeMismatch: clue-list lengths differ from declared counts.
//   - ErrUnsatisfiable: no grid satisfies the clues (a routine outcome,
//     not an exception).
//   - ErrGuessBudget: MaxGuesses exhausted before an answer.
//   - ErrBadOption: invalid Options value.
package solver
