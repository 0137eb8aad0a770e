package board

import (
	"fmt"
	"sort"
	"strings"
)

// Board is an immutable snapshot of one deduction round: grid dimensions plus
// every suspect currently on the grid. Construct with New; all methods are
// read-only and safe for concurrent use.
type Board struct {
	rows, cols int
	suspects   []Suspect      // row-major position order
	byPos      map[Position]int
	byName     map[string]int
}

// New constructs a Board from the given dimensions and suspects.
// It deep-copies the input slice to ensure immutability and validates:
// positive dimensions, every position in bounds, at most one suspect per
// cell, and unique names. Suspects are reordered row-major internally, so
// input order does not matter.
// Complexity: O(S log S) time, O(S) memory.
func New(rows, cols int, suspects []Suspect) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDims, rows, cols)
	}
	ordered := make([]Suspect, len(suspects))
	copy(ordered, suspects)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Pos.Less(ordered[j].Pos) })

	b := &Board{
		rows:     rows,
		cols:     cols,
		suspects: ordered,
		byPos:    make(map[Position]int, len(ordered)),
		byName:   make(map[string]int, len(ordered)),
	}
	for i, s := range ordered {
		if !b.InBounds(s.Pos) {
			return nil, fmt.Errorf("%w: %s at %s", ErrOutOfBounds, s.Name, s.Pos)
		}
		if prev, dup := b.byPos[s.Pos]; dup {
			return nil, fmt.Errorf("%w: %s and %s both at %s", ErrDuplicatePosition, ordered[prev].Name, s.Name, s.Pos)
		}
		if _, dup := b.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		b.byPos[s.Pos] = i
		b.byName[s.Name] = i
	}

	return b, nil
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether p lies within the grid boundaries.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// IsEdge reports whether p touches any border row or column of the grid.
func (b *Board) IsEdge(p Position) bool {
	return p.Row == 0 || p.Row == b.rows-1 || p.Col == 0 || p.Col == b.cols-1
}

// Neighbors returns the up to 8 king-adjacent cells of p, clipped to the
// grid, in row-major order. p itself is never included.
func (b *Board) Neighbors(p Position) []Position {
	out := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q := Position{Row: p.Row + dr, Col: p.Col + dc}
			if b.InBounds(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

// At returns the suspect occupying p, if any.
func (b *Board) At(p Position) (Suspect, bool) {
	i, ok := b.byPos[p]
	if !ok {
		return Suspect{}, false
	}
	return b.suspects[i], true
}

// ByName returns the suspect with the given name, if present.
func (b *Board) ByName(name string) (Suspect, bool) {
	i, ok := b.byName[name]
	if !ok {
		return Suspect{}, false
	}
	return b.suspects[i], true
}

// Positions returns every occupied cell in row-major order.
// The returned slice is freshly allocated on each call.
func (b *Board) Positions() []Position {
	out := make([]Position, len(b.suspects))
	for i, s := range b.suspects {
		out[i] = s.Pos
	}
	return out
}

// Suspects returns a copy of all suspects in row-major order.
func (b *Board) Suspects() []Suspect {
	out := make([]Suspect, len(b.suspects))
	copy(out, b.suspects)
	return out
}

// Unknowns returns the suspects whose label is still Unknown, row-major.
func (b *Board) Unknowns() []Suspect {
	var out []Suspect
	for _, s := range b.suspects {
		if s.Label == Unknown {
			out = append(out, s)
		}
	}
	return out
}

// Resolve returns a new Board in which each named suspect takes the given
// label. The receiver is left untouched. Every name must exist on the board
// (ErrUnknownSuspect) and every label must be Innocent or Criminal
// (ErrBadLabel). Already-resolved suspects may be re-asserted only with
// their existing label.
func (b *Board) Resolve(labels map[string]Label) (*Board, error) {
	next := make([]Suspect, len(b.suspects))
	copy(next, b.suspects)
	for name, l := range labels {
		i, ok := b.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuspect, name)
		}
		if !l.Resolved() {
			return nil, fmt.Errorf("%w: %q -> %s", ErrBadLabel, name, l)
		}
		if cur := next[i].Label; cur != Unknown && cur != l {
			return nil, fmt.Errorf("%w: %q already %s", ErrBadLabel, name, cur)
		}
		next[i].Label = l
	}
	return New(b.rows, b.cols, next)
}

// String renders the board as a text grid, one row per line, each cell as
// "Name/profession[verdict initial]" ("?" while unknown). Empty cells render
// as a dot. Intended for logs and CLI output, not for parsing.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteString("  ")
			}
			s, ok := b.At(Position{Row: r, Col: c})
			if !ok {
				sb.WriteString(".")
				continue
			}
			mark := "?"
			switch s.Label {
			case Innocent:
				mark = "I"
			case Criminal:
				mark = "C"
			}
			fmt.Fprintf(&sb, "%s/%s[%s]", s.Name, s.Profession, mark)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
