// Package board models the immutable grid snapshot a deduction round is
// played on: a rectangular grid of uniquely named suspects, each holding a
// label that is Innocent, Criminal, or still Unknown.
//
// What:
//
//   - Position addresses one cell (0-indexed row/column, A1-style rendering).
//   - Suspect couples a name, a profession, a cell, a label, and the raw
//     hint text shown when the suspect was revealed.
//   - Board is a validated, read-only snapshot of all suspects plus the
//     grid dimensions. Geometry queries (InBounds, IsEdge, Neighbors) and
//     lookups (At, ByName) never mutate it.
//   - Resolve produces a new snapshot with additional labels filled in;
//     the receiver is never changed in place.
//
// Why:
//
//   - Expression evaluation and solving both need a stable view of the
//     grid; immutability keeps concurrent solver trials independent.
//   - "Unknown" is storage state only. It marks a suspect whose label has
//     not been revealed; expression results never contain it.
//
// Errors:
//
//   - ErrBadDims: non-positive grid dimensions.
//   - ErrOutOfBounds: a suspect placed outside the grid.
//   - ErrDuplicatePosition: two suspects on one cell.
//   - ErrDuplicateName: two suspects sharing a name.
//   - ErrUnknownSuspect: Resolve given a name absent from the board.
//   - ErrBadLabel: Resolve given a label other than Innocent or Criminal.
package board
