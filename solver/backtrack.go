package solver

import (
	"context"
	"errors"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/eval"
	"github.com/kulgod/clues-solver/expr"
)

// backtrack covers the assignment space by assigning unrevealed suspects
// one at a time in row-major order, abandoning a branch as soon as any clue
// already evaluates false on the partial board. Results are identical to
// full enumeration: a clue that evaluates without touching an unassigned
// cell has the same value on every completion of the branch.
func backtrack(b *board.Board, unknowns []board.Suspect, cs []compiled, o Options) (tally, error) {
	e := &explorer{
		cs:  cs,
		ctx: o.Ctx,
		chk: uint64(o.CheckEvery),
		ts:  newTrial(b, unknowns),
		t:   newTally(len(unknowns)),
	}
	if err := e.descend(0); err != nil {
		return tally{}, err
	}
	return e.t, nil
}

type explorer struct {
	cs    []compiled
	ctx   context.Context
	chk   uint64
	ts    *trial
	t     tally
	nodes uint64
}

func (e *explorer) descend(depth int) error {
	e.nodes++
	if e.nodes%e.chk == 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}
	}

	if depth == len(e.ts.labels) {
		ok, err := checkAll(e.cs, e.ts)
		if err != nil {
			return err
		}
		if ok {
			e.t.record(e.ts.labels)
		}
		return nil
	}

	for _, l := range [2]board.Label{board.Innocent, board.Criminal} {
		e.ts.set(depth, l)
		open, err := e.viable()
		if err != nil {
			return err
		}
		if open {
			if err := e.descend(depth + 1); err != nil {
				return err
			}
		}
	}
	e.ts.set(depth, board.Unknown)
	return nil
}

// viable optimistically evaluates every clue on the partial board. A clue
// that hits an unassigned label (ErrUnresolved) is not decidable yet and
// keeps the branch open; one that evaluates false closes it. Clues reading
// revelation state (IsUnknown) would see partial assignments as
// unrevealed, so they are only judged at the leaf.
func (e *explorer) viable() (bool, error) {
	for _, c := range e.cs {
		if c.usesUnknown {
			continue
		}
		v, err := eval.Evaluate(c.expr, e.ts)
		if err != nil {
			if errors.Is(err, expr.ErrUnresolved) {
				continue
			}
			return false, badClue(c, err)
		}
		if v.Kind() != expr.KindBool {
			return false, badClue(c, errors.New("evaluates to non-bool"))
		}
		if !v.Bool() {
			return false, nil
		}
	}
	return true, nil
}
