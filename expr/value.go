package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kulgod/clues-solver/board"
)

// ValueKind tags the active variant of a Value.
type ValueKind uint8

const (
	// KindPosition is a single grid cell.
	KindPosition ValueKind = iota
	// KindSet is an unordered, deduplicated set of grid cells.
	KindSet
	// KindNumber is an integer.
	KindNumber
	// KindBool is a truth value.
	KindBool
	// KindLabel is a resolved verdict (Innocent or Criminal).
	KindLabel
	// KindProfession is an occupation string.
	KindProfession
)

// String returns the kind name used in error messages and encodings.
func (k ValueKind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindSet:
		return "set"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindLabel:
		return "label"
	case KindProfession:
		return "profession"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// PosSet is a set of grid cells with set semantics: unordered, deduplicated.
// The zero value is not usable; construct with NewPosSet.
type PosSet map[board.Position]struct{}

// NewPosSet builds a set from the given positions.
func NewPosSet(ps ...board.Position) PosSet {
	s := make(PosSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p into the set.
func (s PosSet) Add(p board.Position) { s[p] = struct{}{} }

// Has reports whether p is a member.
func (s PosSet) Has(p board.Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the member count.
func (s PosSet) Len() int { return len(s) }

// Union returns a new set holding every member of s and t.
func (s PosSet) Union(t PosSet) PosSet {
	out := make(PosSet, len(s)+len(t))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range t {
		out[p] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the members present in both s and t.
func (s PosSet) Intersect(t PosSet) PosSet {
	out := make(PosSet)
	for p := range s {
		if t.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Equal reports set equality.
func (s PosSet) Equal(t PosSet) bool {
	if len(s) != len(t) {
		return false
	}
	for p := range s {
		if !t.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order. Iteration over the map is
// nondeterministic; every ordered consumer must go through Sorted.
func (s PosSet) Sorted() []board.Position {
	out := make([]board.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// String renders the set row-major, e.g. {A1 B2}.
func (s PosSet) String() string {
	parts := make([]string, 0, len(s))
	for _, p := range s.Sorted() {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Value is the tagged union every expression reduces to. Construct with the
// typed constructors below; the accessors panic-free return the zero payload
// when asked for the wrong variant, so callers must check Kind first.
type Value struct {
	kind ValueKind
	pos  board.Position
	set  PosSet
	num  int
	b    bool
	lbl  board.Label
	prof string
}

// PositionValue wraps a single cell.
func PositionValue(p board.Position) Value { return Value{kind: KindPosition, pos: p} }

// SetValue wraps a position set.
func SetValue(s PosSet) Value { return Value{kind: KindSet, set: s} }

// NumberValue wraps an integer.
func NumberValue(n int) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps a truth value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// LabelValue wraps a resolved verdict.
func LabelValue(l board.Label) Value { return Value{kind: KindLabel, lbl: l} }

// ProfessionValue wraps an occupation string.
func ProfessionValue(p string) Value { return Value{kind: KindProfession, prof: p} }

// Kind returns the active variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Pos returns the position payload.
func (v Value) Pos() board.Position { return v.pos }

// Set returns the set payload.
func (v Value) Set() PosSet { return v.set }

// Num returns the integer payload.
func (v Value) Num() int { return v.num }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Label returns the verdict payload.
func (v Value) Label() board.Label { return v.lbl }

// Profession returns the occupation payload.
func (v Value) Profession() string { return v.prof }

// Equal reports deep equality: same kind, same payload, with set payloads
// compared by membership.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindPosition:
		return v.pos == w.pos
	case KindSet:
		return v.set.Equal(w.set)
	case KindNumber:
		return v.num == w.num
	case KindBool:
		return v.b == w.b
	case KindLabel:
		return v.lbl == w.lbl
	case KindProfession:
		return v.prof == w.prof
	default:
		return false
	}
}

// String renders the payload for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindPosition:
		return v.pos.String()
	case KindSet:
		return v.set.String()
	case KindNumber:
		return fmt.Sprintf("%d", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindLabel:
		return v.lbl.String()
	case KindProfession:
		return v.prof
	default:
		return "invalid"
	}
}
