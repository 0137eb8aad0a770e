// Package eval defines the board view evaluation runs against.
package eval

import "github.com/kulgod/clues-solver/board"

// State is the read-only view of one board snapshot. Implementations must
// be safe for concurrent readers and stable for the duration of a call to
// Evaluate. *board.Board satisfies State; the solver layers per-trial label
// overlays on top of a shared base board.
type State interface {
	// Rows returns the number of grid rows.
	Rows() int
	// Cols returns the number of grid columns.
	Cols() int
	// At returns the suspect occupying p, if any.
	At(p board.Position) (board.Suspect, bool)
	// ByName returns the suspect with the given name, if present.
	ByName(name string) (board.Suspect, bool)
	// Positions returns every occupied cell in row-major order.
	Positions() []board.Position
}
