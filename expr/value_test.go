package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
)

func pos(r, c int) board.Position { return board.Position{Row: r, Col: c} }

// TestPosSet_SetSemantics verifies deduplication, membership, and the
// row-major Sorted order every ordered consumer relies on.
func TestPosSet_SetSemantics(t *testing.T) {
	s := expr.NewPosSet(pos(1, 1), pos(0, 0), pos(1, 1), pos(0, 1))
	require.Equal(t, 3, s.Len(), "duplicates must collapse")
	assert.True(t, s.Has(pos(0, 0)))
	assert.False(t, s.Has(pos(2, 2)))
	assert.Equal(t, []board.Position{pos(0, 0), pos(0, 1), pos(1, 1)}, s.Sorted())
}

// TestPosSet_UnionIntersect verifies the set operations leave operands
// untouched.
func TestPosSet_UnionIntersect(t *testing.T) {
	a := expr.NewPosSet(pos(0, 0), pos(0, 1))
	b := expr.NewPosSet(pos(0, 1), pos(1, 0))

	u := a.Union(b)
	assert.Equal(t, 3, u.Len())
	i := a.Intersect(b)
	assert.True(t, i.Equal(expr.NewPosSet(pos(0, 1))))

	assert.Equal(t, 2, a.Len(), "union must not mutate its receiver")
	assert.Equal(t, 2, b.Len(), "union must not mutate its operand")
}

// TestValue_Equal verifies kind-checked deep equality.
func TestValue_Equal(t *testing.T) {
	cases := []struct {
		name string
		a, b expr.Value
		want bool
	}{
		{"SamePosition", expr.PositionValue(pos(1, 2)), expr.PositionValue(pos(1, 2)), true},
		{"DifferentPosition", expr.PositionValue(pos(1, 2)), expr.PositionValue(pos(2, 1)), false},
		{"KindMismatch", expr.NumberValue(0), expr.BoolValue(false), false},
		{"SameSet", expr.SetValue(expr.NewPosSet(pos(0, 0), pos(1, 1))), expr.SetValue(expr.NewPosSet(pos(1, 1), pos(0, 0))), true},
		{"SubsetNotEqual", expr.SetValue(expr.NewPosSet(pos(0, 0))), expr.SetValue(expr.NewPosSet(pos(0, 0), pos(1, 1))), false},
		{"SameLabel", expr.LabelValue(board.Criminal), expr.LabelValue(board.Criminal), true},
		{"DifferentLabel", expr.LabelValue(board.Criminal), expr.LabelValue(board.Innocent), false},
		{"SameProfession", expr.ProfessionValue("cop"), expr.ProfessionValue("cop"), true},
		{"SameNumber", expr.NumberValue(7), expr.NumberValue(7), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "Equal must be symmetric")
		})
	}
}
