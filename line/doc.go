// Package line performs single-line nonogram deduction: given one clue
// and the partially-known cells of one row or column, it derives every
// cell whose value is identical across all clue-consistent patterns.
//
// What:
//
//   - Clue: the ordered run lengths required in one line; an empty clue
//     means the whole line is Empty.
//   - Solve: the forced-cell deduction, reporting a sparse ForcedUpdate
//     or ErrContradiction when no consistent pattern exists.
//   - CountPlacements: the number of consistent patterns, used to rank
//     lines when the search has to guess.
//   - Enumerate: materialized candidate patterns, capped; a ground-truth
//     oracle for the DP and fuel for most-constrained guessing.
//
// Why:
//
//   - A cell agreed on by every consistent pattern is logically forced;
//     collecting those cells line by line is the whole deductive power
//     of a nonogram solver.
//   - Materializing patterns is exponential on long ambiguous lines, so
//     Solve never does: it answers "can cell i be Filled/Empty in some
//     consistent pattern?" with a run-placement DP instead, which yields
//     exactly the same forced set.
//
// Algorithm Outline (Solve):
//  1. Let n = line length, k = number of runs. Placing run j at cell i
//     consumes cells i..i+c[j]-1 plus one separator Empty, except at the
//     line end.
//  2. Backward pass: completable[i][j] = cells[i:] can realize runs c[j:]
//     honoring every already-known cell.
//  3. If !completable[0][0]: no consistent pattern — ErrContradiction.
//  4. Forward pass: reachable[i][j] = some consistent prefix assigns
//     cells[:i] using runs c[:j], positioned so a run may start at i.
//  5. A cell can be Empty (resp. Filled) iff some reachable state takes
//     an Empty step (resp. covers it with a run placement) that is also
//     completable. Cells with exactly one possibility are forced.
//
// Complexity:
//
//	Solve / CountPlacements: Time O(n·k·maxRun), Memory O(n·k).
//	Enumerate: exponential in the worst case; always cap with max.
//
// Errors:
//
//   - ErrRunNotPositive — a clue run is < 1.
//   - ErrClueTooLong    — runs plus mandatory gaps exceed the line.
//   - ErrContradiction  — no pattern satisfies both clue and known cells.
package line
