package solver_test

import (
	"testing"

	"github.com/katalvlaran/nonogrid/line"
	"github.com/katalvlaran/nonogrid/solver"
)

// benchmarkSolve runs a full solve per iteration and fails on any
// unexpected error. Construction is inside the loop on purpose: Solve
// owns puzzle building, so the benchmark mirrors real call shape.
func benchmarkSolve(b *testing.B, cols, rows []line.Clue, opts solver.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(cols, rows, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_FiveByFive benchmarks the deduction-only 5×5 puzzle.
func BenchmarkSolve_FiveByFive(b *testing.B) {
	benchmarkSolve(b,
		[]line.Clue{{1, 2}, {4}, {2, 2}, {1}, {1}},
		[]line.Clue{{3}, {3}, {1}, {3}, {3}},
		solver.DefaultOptions(),
	)
}

// BenchmarkSolve_Ambiguous benchmarks a puzzle that stalls and guesses:
// 8×8 permutation clues, one filled cell per line.
func BenchmarkSolve_Ambiguous(b *testing.B) {
	cols := make([]line.Clue, 8)
	rows := make([]line.Clue, 8)
	for i := range cols {
		cols[i] = line.Clue{1}
		rows[i] = line.Clue{1}
	}
	benchmarkSolve(b, cols, rows, solver.DefaultOptions())
}

// BenchmarkPropagate benchmarks one propagation fixpoint on the 5×5
// puzzle, rebuilding the puzzle each iteration to keep it all-dirty.
func BenchmarkPropagate(b *testing.B) {
	cols := []line.Clue{{1, 2}, {4}, {2, 2}, {1}, {1}}
	rows := []line.Clue{{3}, {3}, {1}, {3}, {3}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := solver.NewPuzzle(cols, rows)
		if err != nil {
			b.Fatalf("NewPuzzle failed: %v", err)
		}
		if _, err = solver.Propagate(p); err != nil {
			b.Fatalf("Propagate failed: %v", err)
		}
	}
}
