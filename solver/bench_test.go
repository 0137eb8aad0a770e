package solver_test

import (
	"fmt"
	"testing"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
	"github.com/kulgod/clues-solver/solver"
)

// benchBoard builds a rows x cols grid with one revealed criminal in the
// top-left corner and every other suspect unrevealed.
func benchBoard(b *testing.B, rows, cols int) *board.Board {
	b.Helper()
	suspects := make([]board.Suspect, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := board.Suspect{
				Name:       fmt.Sprintf("S%d", r*cols+c),
				Profession: "cook",
				Pos:        board.Position{Row: r, Col: c},
			}
			if r == 0 && c == 0 {
				s.Label = board.Criminal
			}
			suspects = append(suspects, s)
		}
	}
	bd, err := board.New(rows, cols, suspects)
	if err != nil {
		b.Fatal(err)
	}
	return bd
}

func benchClues(criminals int) []solver.Clue {
	return []solver.Clue{
		{Source: "S0", Expr: &expr.Equal{
			Left:  &expr.Call{Name: "total_criminals"},
			Right: &expr.Literal{Value: expr.NumberValue(criminals)},
		}},
		{Source: "S0", Expr: &expr.AreConnected{
			Set: &expr.Call{Name: "criminals", Args: []expr.Expr{&expr.AllCharacters{}}},
		}},
	}
}

// BenchmarkSolve_Enumerate covers all 2^15 assignments of a 4x4 board.
func BenchmarkSolve_Enumerate(b *testing.B) {
	bd := benchBoard(b, 4, 4)
	clues := benchClues(6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(bd, clues); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Backtrack forces the pruned sequential path on the same
// instance.
func BenchmarkSolve_Backtrack(b *testing.B) {
	bd := benchBoard(b, 4, 4)
	clues := benchClues(6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(bd, clues, solver.WithBacktrackThreshold(0)); err != nil {
			b.Fatal(err)
		}
	}
}
