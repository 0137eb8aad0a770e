// Package board defines core types and sentinel errors for the board
// subpackage of github.com/kulgod/clues-solver.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and resolution.
var (
	// ErrBadDims indicates non-positive grid dimensions.
	ErrBadDims = errors.New("board: grid dimensions must be positive")
	// ErrOutOfBounds indicates a suspect positioned outside the grid.
	ErrOutOfBounds = errors.New("board: suspect position outside grid")
	// ErrDuplicatePosition indicates two suspects occupying the same cell.
	ErrDuplicatePosition = errors.New("board: position occupied by more than one suspect")
	// ErrDuplicateName indicates two suspects sharing one name.
	ErrDuplicateName = errors.New("board: suspect names must be unique")
	// ErrUnknownSuspect indicates a name that matches no suspect on the board.
	ErrUnknownSuspect = errors.New("board: unknown suspect")
	// ErrBadLabel indicates a label outside {Innocent, Criminal} where a
	// resolved label is required.
	ErrBadLabel = errors.New("board: label must be Innocent or Criminal")
)

// Label is the truth value a suspect ultimately holds. Unknown is the zero
// value and exists only as board storage state for a suspect whose label has
// not been revealed yet; expression evaluation never produces it.
type Label uint8

const (
	// Unknown marks an unrevealed suspect. Storage state only.
	Unknown Label = iota
	// Innocent marks a suspect cleared of the crime.
	Innocent
	// Criminal marks a suspect guilty of the crime.
	Criminal
)

// String returns the lowercase label name used throughout the game data.
func (l Label) String() string {
	switch l {
	case Innocent:
		return "innocent"
	case Criminal:
		return "criminal"
	default:
		return "unknown"
	}
}

// Resolved reports whether l carries an actual verdict.
func (l Label) Resolved() bool { return l == Innocent || l == Criminal }

// Position addresses one grid cell. Row and Col are 0-indexed; Row 0 is the
// top of the grid and Col 0 its left edge.
type Position struct {
	Row, Col int
}

// String renders the cell in the game's notation: column letter then 1-based
// row, e.g. {Row: 2, Col: 0} -> "A3". Columns beyond Z fall back to "(r,c)".
func (p Position) String() string {
	if p.Col < 0 || p.Col >= 26 || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}

// Less orders positions row-major: smaller row first, then smaller column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Chebyshev returns the king-move distance between p and q. Two distinct
// cells are neighbors exactly when their Chebyshev distance is 1.
func (p Position) Chebyshev(q Position) int {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// Suspect is one occupant of a grid cell.
type Suspect struct {
	// Name uniquely identifies the suspect on its board.
	Name string
	// Profession is the suspect's stated occupation ("cop", "judge", ...).
	// Professions carry no verdict of their own; hints may reference them.
	Profession string
	// Pos is the cell the suspect occupies.
	Pos Position
	// Label is the current verdict, or Unknown while unrevealed.
	Label Label
	// Hint is the raw hint text revealed with the suspect, if any.
	// Kept for reporting; the solver consumes formalized expressions instead.
	Hint string
}
