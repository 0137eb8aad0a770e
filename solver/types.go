// Package solver defines types and options for certainty deduction.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
)

// ErrBadClue indicates a malformed clue: failed sugar expansion, a
// non-boolean result, or any evaluation error raised against a fully
// resolved trial board.
var ErrBadClue = errors.New("solver: malformed clue")

// Clue is one formalized hint. Source names the revealed suspect the hint
// is attached to; it is carried for reporting and plays no role in solving.
// The expression may be canonical or still contain sugar Calls; Solve
// expands it either way.
type Clue struct {
	Source string
	Expr   expr.Expr
}

// Outcome classifies a solve result.
type Outcome uint8

const (
	// CertainMove: one suspect's verdict is forced by the clues.
	CertainMove Outcome = iota
	// NoCertainMove: consistent models exist but no verdict is forced.
	NoCertainMove
	// Unsat: no labeling satisfies every clue; the clues contradict each
	// other or the already-revealed verdicts.
	Unsat
	// TimedOut: cancelled before the candidate space was covered.
	TimedOut
)

// String returns the outcome name used in logs and CLI output.
func (o Outcome) String() string {
	switch o {
	case CertainMove:
		return "certain_move"
	case NoCertainMove:
		return "no_certain_move"
	case Unsat:
		return "unsat"
	case TimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("outcome(%d)", o)
	}
}

// Recommendation is the solve result handed to the caller. Name and Label
// are meaningful only for CertainMove. Justification, when requested, holds
// the indices (into the input clue slice) of a minimal subset that still
// forces the same move.
type Recommendation struct {
	Outcome       Outcome
	Name          string
	Label         board.Label
	Justification []int
}

// Option configures optional behavior of Solve.
// Use with Solve(b, clues, opts...).
type Option func(*Options)

// Options holds configurable parameters for a solve run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is checked every CheckEvery trials or backtracking
	// nodes and reported as the TimedOut outcome.
	Ctx context.Context

	// Workers bounds the goroutines splitting the enumeration space.
	// Defaults to runtime.NumCPU(). The backtracking path is sequential.
	Workers int

	// CheckEvery is the cancellation-check granularity in trials/nodes.
	// Default 1024.
	CheckEvery int

	// BacktrackThreshold is the unrevealed-suspect count above which full
	// enumeration gives way to pruned backtracking. Default 24.
	BacktrackThreshold int

	// Justify requests the minimal-clue-subset explanation for a
	// CertainMove. It costs one extra solve per clue. Default off.
	Justify bool

	// Logger receives debug-level progress; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - One worker per CPU core
//   - Cancellation checks every 1024 trials
//   - Backtracking beyond 24 unrevealed suspects
//   - No justification, no logging
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		Workers:            runtime.NumCPU(),
		CheckEvery:         1024,
		BacktrackThreshold: 24,
		Justify:            false,
		Logger:             zap.NewNop(),
	}
}

// WithContext returns an Option that sets the context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that bounds enumeration concurrency.
// Values below 1 have no effect.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithCheckEvery returns an Option that sets the cancellation-check
// granularity. Values below 1 have no effect.
func WithCheckEvery(k int) Option {
	return func(o *Options) {
		if k >= 1 {
			o.CheckEvery = k
		}
	}
}

// WithBacktrackThreshold returns an Option that sets the switchover point
// from full enumeration to pruned backtracking. Values below 0 have no
// effect.
func WithBacktrackThreshold(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.BacktrackThreshold = n
		}
	}
}

// WithJustification returns an Option that enables the minimal-clue-subset
// explanation on CertainMove results.
func WithJustification() Option {
	return func(o *Options) {
		o.Justify = true
	}
}

// WithLogger returns an Option that installs a zap logger for debug-level
// solve traces. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
