package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
	"github.com/kulgod/clues-solver/solver"
)

func pos(r, c int) board.Position { return board.Position{Row: r, Col: c} }

func num(n int) expr.Expr { return &expr.Literal{Value: expr.NumberValue(n)} }

// noCriminalNeighbors formalizes "none of my neighbors is a criminal".
func noCriminalNeighbors(name string) expr.Expr {
	return &expr.Equal{
		Left: &expr.Count{Set: &expr.Filter{
			Source: &expr.Neighbors{Of: &expr.CharacterRef{Name: name}},
			Pred:   &expr.HasLabel{Label: board.Criminal},
		}},
		Right: num(0),
	}
}

// twoByOne is the forced-move fixture: Ann revealed criminal at A1, Bob
// unrevealed at A2.
func twoByOne(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(2, 1, []board.Suspect{
		{Name: "Ann", Profession: "judge", Pos: pos(0, 0), Label: board.Criminal},
		{Name: "Bob", Profession: "cop", Pos: pos(1, 0)},
	})
	require.NoError(t, err)
	return b
}

//----------------------------------------------------------------------------//
// Outcome Scenarios
//----------------------------------------------------------------------------//

// TestSolve_ForcedMove: Bob is Ann's only neighbor, so "no criminal
// neighbors of Ann" forces Bob innocent.
func TestSolve_ForcedMove(t *testing.T) {
	rec, err := solver.Solve(twoByOne(t), []solver.Clue{
		{Source: "Ann", Expr: noCriminalNeighbors("Ann")},
	})
	require.NoError(t, err)
	assert.Equal(t, solver.CertainMove, rec.Outcome)
	assert.Equal(t, "Bob", rec.Name)
	assert.Equal(t, board.Innocent, rec.Label)
}

// TestSolve_Contradiction: additionally forcing Bob criminal leaves no
// consistent model.
func TestSolve_Contradiction(t *testing.T) {
	rec, err := solver.Solve(twoByOne(t), []solver.Clue{
		{Source: "Ann", Expr: noCriminalNeighbors("Ann")},
		{Source: "Ann", Expr: &expr.HasLabel{Subject: &expr.CharacterRef{Name: "Bob"}, Label: board.Criminal}},
	})
	require.NoError(t, err)
	assert.Equal(t, solver.Unsat, rec.Outcome)
	assert.Empty(t, rec.Name)
}

// TestSolve_Underdetermined: "at least one of the two is criminal" is
// satisfied by assignments disagreeing on both suspects.
func TestSolve_Underdetermined(t *testing.T) {
	b, err := board.New(1, 2, []board.Suspect{
		{Name: "Eve", Profession: "cook", Pos: pos(0, 0)},
		{Name: "Fay", Profession: "cop", Pos: pos(0, 1)},
	})
	require.NoError(t, err)

	rec, err := solver.Solve(b, []solver.Clue{
		{Source: "", Expr: &expr.Or{Exprs: []expr.Expr{
			&expr.HasLabel{Subject: &expr.CharacterRef{Name: "Eve"}, Label: board.Criminal},
			&expr.HasLabel{Subject: &expr.CharacterRef{Name: "Fay"}, Label: board.Criminal},
		}}},
	})
	require.NoError(t, err)
	assert.Equal(t, solver.NoCertainMove, rec.Outcome)
}

// TestSolve_NothingUnrevealed: n = 0 short-circuits to NoCertainMove
// without generating trials; even contradictory clues are not consulted.
func TestSolve_NothingUnrevealed(t *testing.T) {
	b, err := board.New(1, 1, []board.Suspect{
		{Name: "Ann", Profession: "judge", Pos: pos(0, 0), Label: board.Innocent},
	})
	require.NoError(t, err)

	rec, err := solver.Solve(b, []solver.Clue{
		{Source: "Ann", Expr: &expr.Literal{Value: expr.BoolValue(false)}},
	})
	require.NoError(t, err)
	assert.Equal(t, solver.NoCertainMove, rec.Outcome)
}

// TestSolve_TieBreak: when several suspects are forced at once, the first
// in row-major position order is reported, regardless of input order.
func TestSolve_TieBreak(t *testing.T) {
	b, err := board.New(2, 2, []board.Suspect{
		{Name: "Dee", Profession: "clerk", Pos: pos(1, 1)},
		{Name: "Bob", Profession: "cop", Pos: pos(0, 1)},
		{Name: "Cal", Profession: "cop", Pos: pos(1, 0)},
	})
	require.NoError(t, err)

	rec, err := solver.Solve(b, []solver.Clue{
		{Source: "", Expr: &expr.Call{Name: "is_innocent", Args: []expr.Expr{&expr.CharacterRef{Name: "Dee"}}}},
		{Source: "", Expr: &expr.Call{Name: "is_innocent", Args: []expr.Expr{&expr.CharacterRef{Name: "Bob"}}}},
	})
	require.NoError(t, err)
	require.Equal(t, solver.CertainMove, rec.Outcome)
	assert.Equal(t, "Bob", rec.Name, "B1 precedes B2 in row-major order")
	assert.Equal(t, board.Innocent, rec.Label)
}

//----------------------------------------------------------------------------//
// Path Agreement and Cancellation
//----------------------------------------------------------------------------//

// threeByThree returns a 3x3 fixture with Mia revealed criminal in the
// center and eight unrevealed suspects around her.
func threeByThree(t *testing.T) *board.Board {
	t.Helper()
	names := []string{"Ann", "Bob", "Cal", "Dee", "Mia", "Eve", "Fay", "Gil", "Hal"}
	suspects := make([]board.Suspect, 0, 9)
	for i, name := range names {
		s := board.Suspect{Name: name, Profession: "cook", Pos: pos(i/3, i%3)}
		if name == "Mia" {
			s.Label = board.Criminal
		}
		suspects = append(suspects, s)
	}
	b, err := board.New(3, 3, suspects)
	require.NoError(t, err)
	return b
}

// threeByThreeClues: exactly three criminals in total (Mia included), all
// criminals connected, and the corner Ann innocent.
func threeByThreeClues() []solver.Clue {
	return []solver.Clue{
		{Source: "Mia", Expr: &expr.Equal{Left: &expr.Call{Name: "total_criminals"}, Right: num(3)}},
		{Source: "Mia", Expr: &expr.AreConnected{Set: &expr.Call{Name: "criminals", Args: []expr.Expr{&expr.AllCharacters{}}}}},
		{Source: "Mia", Expr: &expr.Call{Name: "is_innocent", Args: []expr.Expr{&expr.CharacterRef{Name: "Ann"}}}},
	}
}

// TestSolve_PathsAgree runs the same instance through parallel
// enumeration, single-worker enumeration, and pruned backtracking, and
// expects identical recommendations.
func TestSolve_PathsAgree(t *testing.T) {
	b := threeByThree(t)
	clues := threeByThreeClues()

	parallel, err := solver.Solve(b, clues, solver.WithWorkers(4))
	require.NoError(t, err)
	serial, err := solver.Solve(b, clues, solver.WithWorkers(1))
	require.NoError(t, err)
	backtracked, err := solver.Solve(b, clues, solver.WithBacktrackThreshold(0))
	require.NoError(t, err)

	assert.Equal(t, parallel, serial)
	assert.Equal(t, parallel, backtracked)
}

// TestSolve_IsUnknownClue verifies a clue reading revelation state is
// handled identically by both paths: on fully resolved trial boards
// IsUnknown is false everywhere, so the clue below holds vacuously.
func TestSolve_IsUnknownClue(t *testing.T) {
	b := twoByOne(t)
	clues := []solver.Clue{
		{Source: "Ann", Expr: &expr.Equal{
			Left:  &expr.Count{Set: &expr.Filter{Source: &expr.AllCharacters{}, Pred: &expr.IsUnknown{}}},
			Right: num(0),
		}},
		{Source: "Ann", Expr: noCriminalNeighbors("Ann")},
	}

	enumerated, err := solver.Solve(b, clues)
	require.NoError(t, err)
	backtracked, err := solver.Solve(b, clues, solver.WithBacktrackThreshold(0))
	require.NoError(t, err)

	require.Equal(t, solver.CertainMove, enumerated.Outcome)
	assert.Equal(t, enumerated, backtracked)
}

// TestSolve_Cancelled: a pre-cancelled context yields the TimedOut
// outcome, never a fabricated recommendation and never an error.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, opts := range [][]solver.Option{
		{solver.WithContext(ctx), solver.WithCheckEvery(1)},
		{solver.WithContext(ctx), solver.WithCheckEvery(1), solver.WithBacktrackThreshold(0)},
	} {
		rec, err := solver.Solve(threeByThree(t), threeByThreeClues(), opts...)
		require.NoError(t, err)
		assert.Equal(t, solver.TimedOut, rec.Outcome)
	}
}

//----------------------------------------------------------------------------//
// Malformed Clues
//----------------------------------------------------------------------------//

// TestSolve_BadClues: authoring mistakes surface as ErrBadClue, not as
// failed trials.
func TestSolve_BadClues(t *testing.T) {
	cases := []struct {
		name string
		clue solver.Clue
	}{
		{"UnknownName", solver.Clue{Source: "Ann", Expr: noCriminalNeighbors("Zoe")}},
		{"NonBoolean", solver.Clue{Source: "Ann", Expr: &expr.Count{Set: &expr.AllCharacters{}}}},
		{"UnknownSugar", solver.Clue{Source: "Ann", Expr: &expr.Call{Name: "closest_to"}}},
		{"NilExpression", solver.Clue{Source: "Ann"}},
		{"ZeroOperandAnd", solver.Clue{Source: "Ann", Expr: &expr.And{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.Solve(twoByOne(t), []solver.Clue{tc.clue})
			assert.ErrorIs(t, err, solver.ErrBadClue)
		})
	}
}

//----------------------------------------------------------------------------//
// Justification
//----------------------------------------------------------------------------//

// TestSolve_Justification: the tautological second clue is dropped from
// the explanation; the forcing clue remains.
func TestSolve_Justification(t *testing.T) {
	rec, err := solver.Solve(twoByOne(t), []solver.Clue{
		{Source: "Ann", Expr: noCriminalNeighbors("Ann")},
		{Source: "Ann", Expr: &expr.Literal{Value: expr.BoolValue(true)}},
	}, solver.WithJustification())
	require.NoError(t, err)
	require.Equal(t, solver.CertainMove, rec.Outcome)
	assert.Equal(t, []int{0}, rec.Justification)
}

// TestSolve_JustificationOffByDefault: without the option the field stays
// empty even for certain moves.
func TestSolve_JustificationOffByDefault(t *testing.T) {
	rec, err := solver.Solve(twoByOne(t), []solver.Clue{
		{Source: "Ann", Expr: noCriminalNeighbors("Ann")},
	})
	require.NoError(t, err)
	require.Equal(t, solver.CertainMove, rec.Outcome)
	assert.Nil(t, rec.Justification)
}

//----------------------------------------------------------------------------//
// Input Immutability
//----------------------------------------------------------------------------//

// TestSolve_InputUntouched: solving never resolves labels on the caller's
// board.
func TestSolve_InputUntouched(t *testing.T) {
	b := twoByOne(t)
	_, err := solver.Solve(b, []solver.Clue{{Source: "Ann", Expr: noCriminalNeighbors("Ann")}})
	require.NoError(t, err)
	s, _ := b.ByName("Bob")
	assert.Equal(t, board.Unknown, s.Label)
}
