package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/eval"
	"github.com/kulgod/clues-solver/expr"
)

// Per-suspect possibility bits, ORed over all consistent models.
const (
	possInnocent uint8 = 1 << 0
	possCriminal uint8 = 1 << 1
)

// tally is what covered trials proved: how many consistent models exist and
// which verdicts each unrevealed suspect took across them. Tallies from
// independent workers merge by sum and OR, so the partition of the
// enumeration space never affects the result.
type tally struct {
	models   uint64
	possible []uint8
}

func newTally(n int) tally { return tally{possible: make([]uint8, n)} }

func (t *tally) record(labels []board.Label) {
	t.models++
	for i, l := range labels {
		if l == board.Criminal {
			t.possible[i] |= possCriminal
		} else {
			t.possible[i] |= possInnocent
		}
	}
}

func (t *tally) merge(u tally) {
	t.models += u.models
	for i := range t.possible {
		t.possible[i] |= u.possible[i]
	}
}

// compiled is one clue after expansion, with its input index kept for
// error reporting and justification.
type compiled struct {
	idx         int
	src         string
	expr        expr.Expr
	usesUnknown bool
}

func badClue(c compiled, err error) error {
	return fmt.Errorf("%w: clue %d (%q): %v", ErrBadClue, c.idx, c.src, err)
}

// Solve determines whether the clues force any unrevealed suspect's verdict
// on b. The input board and clue trees are never mutated.
//
// Outcomes are reported in the Recommendation; the error return is reserved
// for malformed clues (ErrBadClue). Cancellation of the configured context
// yields the TimedOut outcome, never a partial recommendation.
//
// With no unrevealed suspects the result is immediately NoCertainMove and
// no trials run. When several suspects are forced at once, the first in
// row-major position order is reported.
func Solve(b *board.Board, clues []Clue, opts ...Option) (Recommendation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cs, err := prepare(clues)
	if err != nil {
		return Recommendation{}, err
	}
	unknowns := b.Unknowns()

	start := time.Now()
	o.Logger.Debug("solve started",
		zap.Int("unrevealed", len(unknowns)),
		zap.Int("clues", len(cs)))

	rec, err := run(b, unknowns, cs, o)
	if err != nil {
		return Recommendation{}, err
	}
	if rec.Outcome == CertainMove && o.Justify {
		rec.Justification = justify(b, unknowns, cs, o, rec)
	}

	o.Logger.Debug("solve finished",
		zap.Stringer("outcome", rec.Outcome),
		zap.String("name", rec.Name),
		zap.Stringer("label", rec.Label),
		zap.Duration("elapsed", time.Since(start)))
	return rec, nil
}

// prepare expands every clue and records whether it reads revelation state
// (IsUnknown), which the backtracking pruner must not judge early.
func prepare(clues []Clue) ([]compiled, error) {
	out := make([]compiled, len(clues))
	for i, c := range clues {
		expanded, err := expr.Expand(c.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: clue %d (%q): %v", ErrBadClue, i, c.Source, err)
		}
		if expanded == nil {
			return nil, fmt.Errorf("%w: clue %d (%q): empty expression", ErrBadClue, i, c.Source)
		}
		usesUnknown := false
		expr.Walk(expanded, func(e expr.Expr) bool {
			if _, ok := e.(*expr.IsUnknown); ok {
				usesUnknown = true
			}
			return true
		})
		out[i] = compiled{idx: i, src: c.Source, expr: expanded, usesUnknown: usesUnknown}
	}
	return out, nil
}

func run(b *board.Board, unknowns []board.Suspect, cs []compiled, o Options) (Recommendation, error) {
	n := len(unknowns)
	if n == 0 {
		return Recommendation{Outcome: NoCertainMove}, nil
	}

	var (
		t   tally
		err error
	)
	// Masks are uint64, so enumeration is additionally capped at 62 even
	// if the threshold is raised beyond it.
	if n <= o.BacktrackThreshold && n <= 62 {
		t, err = enumerate(b, unknowns, cs, o)
	} else {
		t, err = backtrack(b, unknowns, cs, o)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Recommendation{Outcome: TimedOut}, nil
		}
		return Recommendation{}, err
	}
	return recommend(unknowns, t), nil
}

// enumerate covers all 2^n assignments, partitioned into contiguous bitmask
// ranges across workers. Bit i of a mask labels the i-th unrevealed suspect
// (row-major): set means Criminal.
func enumerate(b *board.Board, unknowns []board.Suspect, cs []compiled, o Options) (tally, error) {
	n := len(unknowns)
	total := uint64(1) << uint(n)
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > total {
		workers = int(total)
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	parts := make([]tally, workers)
	chunk := total / uint64(workers)
	for w := 0; w < workers; w++ {
		w := w
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = total
		}
		g.Go(func() error {
			ts := newTrial(b, unknowns)
			part := newTally(n)
			for mask := lo; mask < hi; mask++ {
				if (mask-lo)%uint64(o.CheckEvery) == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				ts.setMask(mask)
				ok, err := checkAll(cs, ts)
				if err != nil {
					return err
				}
				if ok {
					part.record(ts.labels)
				}
			}
			parts[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	out := newTally(n)
	for _, p := range parts {
		out.merge(p)
	}
	return out, nil
}

// checkAll evaluates every clue against a fully assigned trial. Any
// evaluation error here means a malformed clue: the board has no
// unresolved cells left to blame.
func checkAll(cs []compiled, ts *trial) (bool, error) {
	for _, c := range cs {
		v, err := eval.Evaluate(c.expr, ts)
		if err != nil {
			return false, badClue(c, err)
		}
		if v.Kind() != expr.KindBool {
			return false, fmt.Errorf("%w: clue %d (%q): evaluates to %s, want bool", ErrBadClue, c.idx, c.src, v.Kind())
		}
		if !v.Bool() {
			return false, nil
		}
	}
	return true, nil
}

// recommend applies the certainty check with the row-major tie-break: the
// first unrevealed suspect whose verdict agrees across all models wins.
func recommend(unknowns []board.Suspect, t tally) Recommendation {
	if t.models == 0 {
		return Recommendation{Outcome: Unsat}
	}
	for i, s := range unknowns {
		switch t.possible[i] {
		case possInnocent:
			return Recommendation{Outcome: CertainMove, Name: s.Name, Label: board.Innocent}
		case possCriminal:
			return Recommendation{Outcome: CertainMove, Name: s.Name, Label: board.Criminal}
		}
	}
	return Recommendation{Outcome: NoCertainMove}
}
