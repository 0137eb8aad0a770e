package board_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kulgod/clues-solver/board"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

func suspect(name string, row, col int, label board.Label) board.Suspect {
	return board.Suspect{Name: name, Profession: "cop", Pos: board.Position{Row: row, Col: col}, Label: label}
}

// TestNew_Errors verifies that New rejects malformed snapshots.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		rows     int
		cols     int
		suspects []board.Suspect
		err      error
	}{
		{"ZeroRows", 0, 4, nil, board.ErrBadDims},
		{"NegativeCols", 5, -1, nil, board.ErrBadDims},
		{"OutOfBounds", 2, 2, []board.Suspect{suspect("Ann", 2, 0, board.Unknown)}, board.ErrOutOfBounds},
		{"DuplicatePosition", 2, 2, []board.Suspect{
			suspect("Ann", 0, 0, board.Unknown),
			suspect("Bob", 0, 0, board.Unknown),
		}, board.ErrDuplicatePosition},
		{"DuplicateName", 2, 2, []board.Suspect{
			suspect("Ann", 0, 0, board.Unknown),
			suspect("Ann", 0, 1, board.Unknown),
		}, board.ErrDuplicateName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.rows, tc.cols, tc.suspects)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestLookups checks At, ByName and row-major ordering of Positions.
func TestLookups(t *testing.T) {
	b, err := board.New(2, 2, []board.Suspect{
		suspect("Dee", 1, 1, board.Criminal),
		suspect("Ann", 0, 0, board.Unknown),
		suspect("Cal", 1, 0, board.Unknown),
		suspect("Bob", 0, 1, board.Innocent),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if s, ok := b.At(board.Position{Row: 1, Col: 1}); !ok || s.Name != "Dee" {
		t.Errorf("At(1,1) = %v, %v; want Dee", s, ok)
	}
	if _, ok := b.At(board.Position{Row: 5, Col: 5}); ok {
		t.Error("At(5,5) reported an occupant on a 2x2 board")
	}
	if s, ok := b.ByName("Bob"); !ok || s.Label != board.Innocent {
		t.Errorf("ByName(Bob) = %v, %v; want innocent", s, ok)
	}
	if _, ok := b.ByName("Zoe"); ok {
		t.Error("ByName(Zoe) = true; want false")
	}

	wantOrder := []board.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if got := b.Positions(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("Positions() = %v; want row-major %v", got, wantOrder)
	}
	if got := b.Unknowns(); len(got) != 2 || got[0].Name != "Ann" || got[1].Name != "Cal" {
		t.Errorf("Unknowns() = %v; want [Ann Cal]", got)
	}
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestNeighbors checks king adjacency against the 2x2 fixture: the corner
// (0,0) sees the other three cells.
func TestNeighbors(t *testing.T) {
	b, err := board.New(2, 2, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := b.Neighbors(board.Position{Row: 0, Col: 0})
	want := []board.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}

	// An interior cell of a 3x3 grid has the full 8.
	b3, _ := board.New(3, 3, nil)
	if got := b3.Neighbors(board.Position{Row: 1, Col: 1}); len(got) != 8 {
		t.Errorf("Neighbors(1,1) on 3x3 = %d cells; want 8", len(got))
	}
}

// TestIsEdge checks the border predicate on a 3x3 grid: only the center
// cell is interior.
func TestIsEdge(t *testing.T) {
	b, _ := board.New(3, 3, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := board.Position{Row: r, Col: c}
			want := r != 1 || c != 1
			if got := b.IsEdge(p); got != want {
				t.Errorf("IsEdge(%s) = %v; want %v", p, got, want)
			}
		}
	}
}

// TestPositionString checks the A1-style rendering.
func TestPositionString(t *testing.T) {
	if got := (board.Position{Row: 2, Col: 0}).String(); got != "A3" {
		t.Errorf("Position{2,0}.String() = %q; want A3", got)
	}
	if got := (board.Position{Row: 0, Col: 3}).String(); got != "D1" {
		t.Errorf("Position{0,3}.String() = %q; want D1", got)
	}
}

// TestChebyshev checks the king-move metric.
func TestChebyshev(t *testing.T) {
	p := board.Position{Row: 1, Col: 1}
	cases := []struct {
		q    board.Position
		want int
	}{
		{board.Position{Row: 1, Col: 1}, 0},
		{board.Position{Row: 0, Col: 0}, 1},
		{board.Position{Row: 0, Col: 2}, 1},
		{board.Position{Row: 4, Col: 2}, 3},
	}
	for _, tc := range cases {
		if got := p.Chebyshev(tc.q); got != tc.want {
			t.Errorf("Chebyshev(%s,%s) = %d; want %d", p, tc.q, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Resolve Tests
//----------------------------------------------------------------------------//

// TestResolve verifies that Resolve returns a new snapshot and never
// mutates the receiver.
func TestResolve(t *testing.T) {
	b, err := board.New(2, 1, []board.Suspect{
		suspect("Ann", 0, 0, board.Criminal),
		suspect("Bob", 1, 0, board.Unknown),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	resolved, err := b.Resolve(map[string]board.Label{"Bob": board.Innocent})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if s, _ := resolved.ByName("Bob"); s.Label != board.Innocent {
		t.Errorf("resolved Bob = %s; want innocent", s.Label)
	}
	if s, _ := b.ByName("Bob"); s.Label != board.Unknown {
		t.Errorf("original Bob mutated to %s; want unknown", s.Label)
	}

	if _, err := b.Resolve(map[string]board.Label{"Zoe": board.Criminal}); !errors.Is(err, board.ErrUnknownSuspect) {
		t.Errorf("Resolve(Zoe) error = %v; want ErrUnknownSuspect", err)
	}
	if _, err := b.Resolve(map[string]board.Label{"Bob": board.Unknown}); !errors.Is(err, board.ErrBadLabel) {
		t.Errorf("Resolve(Bob->unknown) error = %v; want ErrBadLabel", err)
	}
	if _, err := b.Resolve(map[string]board.Label{"Ann": board.Innocent}); !errors.Is(err, board.ErrBadLabel) {
		t.Errorf("Resolve(Ann->innocent) error = %v; want ErrBadLabel (already criminal)", err)
	}
}
