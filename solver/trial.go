package solver

import (
	"github.com/kulgod/clues-solver/board"
)

// trial is one worker's scratch view of the board: the shared immutable
// base plus a label overlay indexed by unrevealed-suspect ordinal
// (row-major). It satisfies eval.State. Each worker owns its trial
// exclusively, so overlay writes need no synchronization; the base board
// is only ever read.
type trial struct {
	base   *board.Board
	ord    map[string]int
	labels []board.Label
}

func newTrial(base *board.Board, unknowns []board.Suspect) *trial {
	ord := make(map[string]int, len(unknowns))
	for i, s := range unknowns {
		ord[s.Name] = i
	}
	return &trial{
		base:   base,
		ord:    ord,
		labels: make([]board.Label, len(unknowns)),
	}
}

// set assigns the i-th unrevealed suspect; board.Unknown clears the slot.
func (t *trial) set(i int, l board.Label) { t.labels[i] = l }

// setMask assigns every unrevealed suspect at once from an enumeration
// bitmask: bit i set means Criminal, clear means Innocent.
func (t *trial) setMask(mask uint64) {
	for i := range t.labels {
		if mask>>uint(i)&1 == 1 {
			t.labels[i] = board.Criminal
		} else {
			t.labels[i] = board.Innocent
		}
	}
}

func (t *trial) overlay(s board.Suspect) board.Suspect {
	if i, ok := t.ord[s.Name]; ok && t.labels[i] != board.Unknown {
		s.Label = t.labels[i]
	}
	return s
}

func (t *trial) Rows() int { return t.base.Rows() }

func (t *trial) Cols() int { return t.base.Cols() }

func (t *trial) Positions() []board.Position { return t.base.Positions() }

func (t *trial) At(p board.Position) (board.Suspect, bool) {
	s, ok := t.base.At(p)
	if !ok {
		return board.Suspect{}, false
	}
	return t.overlay(s), true
}

func (t *trial) ByName(name string) (board.Suspect, bool) {
	s, ok := t.base.ByName(name)
	if !ok {
		return board.Suspect{}, false
	}
	return t.overlay(s), true
}
