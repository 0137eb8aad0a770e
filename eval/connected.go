package eval

import (
	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
)

// connected reports whether the set forms a single component under king
// adjacency (edges between members at Chebyshev distance exactly 1).
// Empty and singleton sets are vacuously connected.
// BFS from an arbitrary member; the frontier only ever visits members of
// the set, so grid bounds are irrelevant here.
// Time: O(|S|*8), Memory: O(|S|).
func connected(s expr.PosSet) bool {
	if s.Len() <= 1 {
		return true
	}
	var start board.Position
	for p := range s {
		start = p
		break
	}
	seen := expr.NewPosSet(start)
	queue := []board.Position{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := board.Position{Row: u.Row + dr, Col: u.Col + dc}
				if s.Has(q) && !seen.Has(q) {
					seen.Add(q)
					queue = append(queue, q)
				}
			}
		}
	}
	return seen.Len() == s.Len()
}
