// Package solver finds the moves a board logically forces: given a snapshot
// with unrevealed suspects and the formalized clues of the revealed ones, it
// determines which unrevealed suspect's verdict is identical across every
// labeling consistent with all clues at once.
//
// What:
//
//   - Solve enumerates every total assignment of Innocent/Criminal to the
//     unrevealed suspects (2^n candidates), keeps the consistent models,
//     and reports the first (row-major) suspect whose verdict never varies.
//   - Beyond a configurable threshold the enumeration switches to pruned
//     backtracking with identical results: suspects are assigned in
//     row-major order and a branch dies as soon as any clue already
//     evaluates false on the partial board.
//   - Outcomes are values, never errors: CertainMove, NoCertainMove
//     (consistent models exist, nothing forced), Unsat (clues contradict),
//     TimedOut (cancelled before the space was covered).
//
// Why:
//
//   - The game only permits provable moves; heuristics are not an option.
//     A move is suggested iff it holds in every consistent model.
//   - Trials are pure functions of (assignment, clues), so the full
//     enumeration splits across workers with a deterministic merge; the
//     shared input board is never mutated.
//
// Options (functional, see DefaultOptions): WithContext, WithWorkers,
// WithCheckEvery, WithBacktrackThreshold, WithJustification, WithLogger.
//
// Errors:
//
//   - ErrBadClue: a clue failed expansion, is not boolean-valued, or
//     errored on a fully resolved trial board (for example by naming a
//     suspect that does not exist). Malformed authoring is surfaced hard,
//     never absorbed as "trial failed".
package solver
