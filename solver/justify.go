package solver

import "github.com/kulgod/clues-solver/board"

// justify shrinks the clue set to a minimal subset still forcing the same
// move: each clue is dropped in turn and kept only if the drop changes the
// recommendation. One extra solve per clue; the result is minimal in the
// sense that no single remaining clue can be removed, not globally optimal.
func justify(b *board.Board, unknowns []board.Suspect, cs []compiled, o Options, want Recommendation) []int {
	active := make([]bool, len(cs))
	for i := range active {
		active[i] = true
	}

	for i := range cs {
		active[i] = false
		rec, err := run(b, unknowns, subset(cs, active), o)
		if err != nil || !sameMove(rec, want) {
			active[i] = true
		}
	}

	out := make([]int, 0, len(cs))
	for i, keep := range active {
		if keep {
			out = append(out, cs[i].idx)
		}
	}
	return out
}

func subset(cs []compiled, active []bool) []compiled {
	out := make([]compiled, 0, len(cs))
	for i, c := range cs {
		if active[i] {
			out = append(out, c)
		}
	}
	return out
}

func sameMove(got, want Recommendation) bool {
	return got.Outcome == CertainMove && got.Name == want.Name && got.Label == want.Label
}
