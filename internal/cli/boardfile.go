package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
	"github.com/kulgod/clues-solver/solver"
)

// boardFile is the on-disk puzzle description.
//
//	rows: 2
//	cols: 1
//	suspects:
//	  - name: Ann
//	    profession: judge
//	    position: {row: 0, col: 0}
//	    label: criminal
//	    hint: "None of my neighbors is a criminal."
//	    clue: '{"node":"equal", ...}'
//
// label is omitted or "unknown" for unrevealed suspects. clue holds the
// suspect's formalized hint as a JSON expression; suspects without one
// contribute no constraint.
type boardFile struct {
	Rows     int           `yaml:"rows"`
	Cols     int           `yaml:"cols"`
	Suspects []suspectFile `yaml:"suspects"`
}

type suspectFile struct {
	Name       string       `yaml:"name"`
	Profession string       `yaml:"profession"`
	Position   positionFile `yaml:"position"`
	Label      string       `yaml:"label"`
	Hint       string       `yaml:"hint"`
	Clue       string       `yaml:"clue"`
}

type positionFile struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// loadBoardFile reads a puzzle description and returns the board together
// with the clues of its revealed suspects.
func loadBoardFile(path string) (*board.Board, []solver.Clue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read board file: %w", err)
	}
	return parseBoardFile(data)
}

func parseBoardFile(data []byte) (*board.Board, []solver.Clue, error) {
	var bf boardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, nil, fmt.Errorf("parse board file: %w", err)
	}

	suspects := make([]board.Suspect, 0, len(bf.Suspects))
	var clues []solver.Clue
	for _, sf := range bf.Suspects {
		label, err := parseLabel(sf.Label)
		if err != nil {
			return nil, nil, fmt.Errorf("suspect %q: %w", sf.Name, err)
		}
		suspects = append(suspects, board.Suspect{
			Name:       sf.Name,
			Profession: sf.Profession,
			Pos:        board.Position{Row: sf.Position.Row, Col: sf.Position.Col},
			Label:      label,
			Hint:       sf.Hint,
		})
		if sf.Clue != "" {
			e, err := expr.Unmarshal([]byte(sf.Clue))
			if err != nil {
				return nil, nil, fmt.Errorf("suspect %q: clue: %w", sf.Name, err)
			}
			clues = append(clues, solver.Clue{Source: sf.Name, Expr: e})
		}
	}

	b, err := board.New(bf.Rows, bf.Cols, suspects)
	if err != nil {
		return nil, nil, err
	}
	return b, clues, nil
}

func parseLabel(s string) (board.Label, error) {
	switch s {
	case "", "unknown":
		return board.Unknown, nil
	case "innocent":
		return board.Innocent, nil
	case "criminal":
		return board.Criminal, nil
	default:
		return board.Unknown, fmt.Errorf("bad label %q (want innocent, criminal, or unknown)", s)
	}
}
