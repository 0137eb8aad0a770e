// Package eval reduces canonical constraint expressions against a board
// snapshot to typed values.
//
// What:
//
//   - Evaluate(e, s): pure, deterministic, recursive reduction of an
//     expression tree to an expr.Value or a typed error.
//   - State: the read-only board view evaluation runs against. A
//     *board.Board satisfies it directly; the solver satisfies it with
//     per-trial overlays.
//
// Why:
//
//   - The solver evaluates every clue once per candidate assignment, so
//     evaluation must be side-effect free and safe to run concurrently
//     against shared immutable trees.
//   - Evaluation order is fixed left-to-right, depth-first; the first
//     error encountered in that order is the one surfaced. There is no
//     short-circuiting past errors, which keeps results independent of
//     operand arrangement tricks.
//
// Semantics:
//
//   - Directional generators yield strict same-column/row rays; Neighbors
//     yields king-adjacent cells clipped to the grid; EdgePositions yields
//     border cells; AllCharacters yields occupied cells.
//   - Filter binds each member as the implicit position for its predicate
//     and fails on the first predicate error, skipping nothing silently.
//   - AreConnected treats the set as a graph with edges between members at
//     Chebyshev distance 1 and requires a single component; empty and
//     singleton sets pass vacuously.
//
// Errors: expr.ErrReference, expr.ErrUnresolved, expr.ErrType,
// expr.ErrArity, as laid out in package expr.
package eval
