package expr

import (
	"encoding/json"
	"fmt"

	"github.com/kulgod/clues-solver/board"
)

// Wire format: one JSON object per node, tagged by "node". Single-child
// operands use dedicated keys (of/source/pred/left/right/set/expr/subject);
// every variadic node, Call included, carries its children under "operands".
// Literal values are tagged by "type". The encoding is lossless: Unmarshal
// of a Marshal result is structurally identical to the input, Call nodes
// included, so un-expanded clue libraries stay portable.

type wireNode struct {
	Node       string      `json:"node"`
	Value      *wireValue  `json:"value,omitempty"`
	Name       string      `json:"name,omitempty"`
	Of         *wireNode   `json:"of,omitempty"`
	Source     *wireNode   `json:"source,omitempty"`
	Pred       *wireNode   `json:"pred,omitempty"`
	Left       *wireNode   `json:"left,omitempty"`
	Right      *wireNode   `json:"right,omitempty"`
	Set        *wireNode   `json:"set,omitempty"`
	Expr       *wireNode   `json:"expr,omitempty"`
	Subject    *wireNode   `json:"subject,omitempty"`
	Operands   []*wireNode `json:"operands,omitempty"`
	Label      string      `json:"label,omitempty"`
	Profession string      `json:"profession,omitempty"`
}

type wirePos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type wireValue struct {
	Type       string    `json:"type"`
	Row        int       `json:"row,omitempty"`
	Col        int       `json:"col,omitempty"`
	Positions  []wirePos `json:"positions,omitempty"`
	Number     int       `json:"number,omitempty"`
	Bool       bool      `json:"bool,omitempty"`
	Label      string    `json:"label,omitempty"`
	Profession string    `json:"profession,omitempty"`
}

// Marshal encodes e into the tagged-node JSON wire form.
func Marshal(e Expr) ([]byte, error) {
	w, err := encode(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Unmarshal decodes the tagged-node JSON wire form back into a tree.
// Malformed input fails with ErrDecode.
func Unmarshal(data []byte) (Expr, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return decode(&w)
}

func encode(e Expr) (*wireNode, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: cannot encode nil expression", ErrType)
	}
	switch n := e.(type) {
	case *Literal:
		v, err := encodeValue(n.Value)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "literal", Value: v}, nil
	case *CharacterRef:
		return &wireNode{Node: "character", Name: n.Name}, nil
	case *AllCharacters:
		return &wireNode{Node: "all_characters"}, nil
	case *EdgePositions:
		return &wireNode{Node: "edge_positions"}, nil
	case *Above:
		return encodeOf("above", n.Of)
	case *Below:
		return encodeOf("below", n.Of)
	case *LeftOf:
		return encodeOf("left_of", n.Of)
	case *RightOf:
		return encodeOf("right_of", n.Of)
	case *Neighbors:
		return encodeOf("neighbors", n.Of)
	case *Filter:
		src, err := encode(n.Source)
		if err != nil {
			return nil, err
		}
		pred, err := encode(n.Pred)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "filter", Source: src, Pred: pred}, nil
	case *Intersection:
		return encodeVariadic("intersection", n.Sets)
	case *Union:
		return encodeVariadic("union", n.Sets)
	case *And:
		return encodeVariadic("and", n.Exprs)
	case *Or:
		return encodeVariadic("or", n.Exprs)
	case *Not:
		in, err := encode(n.Expr)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "not", Expr: in}, nil
	case *Count:
		set, err := encode(n.Set)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "count", Set: set}, nil
	case *Sum:
		return encodeVariadic("sum", n.Exprs)
	case *HasLabel:
		sub, err := encodeSubject(n.Subject)
		if err != nil {
			return nil, err
		}
		if !n.Label.Resolved() {
			return nil, fmt.Errorf("%w: has_label requires Innocent or Criminal", ErrType)
		}
		return &wireNode{Node: "has_label", Subject: sub, Label: n.Label.String()}, nil
	case *HasProfession:
		sub, err := encodeSubject(n.Subject)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "has_profession", Subject: sub, Profession: n.Profession}, nil
	case *IsEdge:
		sub, err := encodeSubject(n.Subject)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "is_edge", Subject: sub}, nil
	case *IsUnknown:
		sub, err := encodeSubject(n.Subject)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "is_unknown", Subject: sub}, nil
	case *Equal:
		return encodePair("equal", n.Left, n.Right)
	case *Greater:
		return encodePair("greater", n.Left, n.Right)
	case *GreaterEqual:
		return encodePair("greater_equal", n.Left, n.Right)
	case *Less:
		return encodePair("less", n.Left, n.Right)
	case *LessEqual:
		return encodePair("less_equal", n.Left, n.Right)
	case *IsOdd:
		in, err := encode(n.Expr)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "is_odd", Expr: in}, nil
	case *IsEven:
		in, err := encode(n.Expr)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "is_even", Expr: in}, nil
	case *AreConnected:
		set, err := encode(n.Set)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "are_connected", Set: set}, nil
	case *Call:
		ops, err := encodeAll(n.Args)
		if err != nil {
			return nil, err
		}
		return &wireNode{Node: "call", Name: n.Name, Operands: ops}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node %T", ErrType, e)
	}
}

func encodeOf(tag string, of Expr) (*wireNode, error) {
	w, err := encode(of)
	if err != nil {
		return nil, err
	}
	return &wireNode{Node: tag, Of: w}, nil
}

func encodePair(tag string, l, r Expr) (*wireNode, error) {
	wl, err := encode(l)
	if err != nil {
		return nil, err
	}
	wr, err := encode(r)
	if err != nil {
		return nil, err
	}
	return &wireNode{Node: tag, Left: wl, Right: wr}, nil
}

func encodeVariadic(tag string, in []Expr) (*wireNode, error) {
	ops, err := encodeAll(in)
	if err != nil {
		return nil, err
	}
	return &wireNode{Node: tag, Operands: ops}, nil
}

func encodeAll(in []Expr) ([]*wireNode, error) {
	out := make([]*wireNode, len(in))
	for i, e := range in {
		w, err := encode(e)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func encodeSubject(sub Expr) (*wireNode, error) {
	if sub == nil {
		return nil, nil
	}
	return encode(sub)
}

func encodeValue(v Value) (*wireValue, error) {
	switch v.Kind() {
	case KindPosition:
		return &wireValue{Type: "position", Row: v.Pos().Row, Col: v.Pos().Col}, nil
	case KindSet:
		// Sorted keeps the encoding deterministic.
		sorted := v.Set().Sorted()
		ps := make([]wirePos, len(sorted))
		for i, p := range sorted {
			ps[i] = wirePos{Row: p.Row, Col: p.Col}
		}
		return &wireValue{Type: "set", Positions: ps}, nil
	case KindNumber:
		return &wireValue{Type: "number", Number: v.Num()}, nil
	case KindBool:
		return &wireValue{Type: "bool", Bool: v.Bool()}, nil
	case KindLabel:
		if !v.Label().Resolved() {
			return nil, fmt.Errorf("%w: label literal must be Innocent or Criminal", ErrType)
		}
		return &wireValue{Type: "label", Label: v.Label().String()}, nil
	case KindProfession:
		return &wireValue{Type: "profession", Profession: v.Profession()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown value kind %s", ErrType, v.Kind())
	}
}

func decode(w *wireNode) (Expr, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: missing node", ErrDecode)
	}
	switch w.Node {
	case "literal":
		v, err := decodeValue(w.Value)
		if err != nil {
			return nil, err
		}
		return &Literal{Value: v}, nil
	case "character":
		if w.Name == "" {
			return nil, fmt.Errorf("%w: character node without name", ErrDecode)
		}
		return &CharacterRef{Name: w.Name}, nil
	case "all_characters":
		return &AllCharacters{}, nil
	case "edge_positions":
		return &EdgePositions{}, nil
	case "above":
		of, err := decode(w.Of)
		if err != nil {
			return nil, err
		}
		return &Above{Of: of}, nil
	case "below":
		of, err := decode(w.Of)
		if err != nil {
			return nil, err
		}
		return &Below{Of: of}, nil
	case "left_of":
		of, err := decode(w.Of)
		if err != nil {
			return nil, err
		}
		return &LeftOf{Of: of}, nil
	case "right_of":
		of, err := decode(w.Of)
		if err != nil {
			return nil, err
		}
		return &RightOf{Of: of}, nil
	case "neighbors":
		of, err := decode(w.Of)
		if err != nil {
			return nil, err
		}
		return &Neighbors{Of: of}, nil
	case "filter":
		src, err := decode(w.Source)
		if err != nil {
			return nil, err
		}
		pred, err := decode(w.Pred)
		if err != nil {
			return nil, err
		}
		return &Filter{Source: src, Pred: pred}, nil
	case "intersection":
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &Intersection{Sets: ops}, nil
	case "union":
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &Union{Sets: ops}, nil
	case "and":
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &And{Exprs: ops}, nil
	case "or":
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &Or{Exprs: ops}, nil
	case "not":
		in, err := decode(w.Expr)
		if err != nil {
			return nil, err
		}
		return &Not{Expr: in}, nil
	case "count":
		set, err := decode(w.Set)
		if err != nil {
			return nil, err
		}
		return &Count{Set: set}, nil
	case "sum":
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &Sum{Exprs: ops}, nil
	case "has_label":
		sub, err := decodeSubject(w.Subject)
		if err != nil {
			return nil, err
		}
		l, err := decodeLabel(w.Label)
		if err != nil {
			return nil, err
		}
		return &HasLabel{Subject: sub, Label: l}, nil
	case "has_profession":
		sub, err := decodeSubject(w.Subject)
		if err != nil {
			return nil, err
		}
		if w.Profession == "" {
			return nil, fmt.Errorf("%w: has_profession without profession", ErrDecode)
		}
		return &HasProfession{Subject: sub, Profession: w.Profession}, nil
	case "is_edge":
		sub, err := decodeSubject(w.Subject)
		if err != nil {
			return nil, err
		}
		return &IsEdge{Subject: sub}, nil
	case "is_unknown":
		sub, err := decodeSubject(w.Subject)
		if err != nil {
			return nil, err
		}
		return &IsUnknown{Subject: sub}, nil
	case "equal":
		l, r, err := decodePair(w)
		if err != nil {
			return nil, err
		}
		return &Equal{Left: l, Right: r}, nil
	case "greater":
		l, r, err := decodePair(w)
		if err != nil {
			return nil, err
		}
		return &Greater{Left: l, Right: r}, nil
	case "greater_equal":
		l, r, err := decodePair(w)
		if err != nil {
			return nil, err
		}
		return &GreaterEqual{Left: l, Right: r}, nil
	case "less":
		l, r, err := decodePair(w)
		if err != nil {
			return nil, err
		}
		return &Less{Left: l, Right: r}, nil
	case "less_equal":
		l, r, err := decodePair(w)
		if err != nil {
			return nil, err
		}
		return &LessEqual{Left: l, Right: r}, nil
	case "is_odd":
		in, err := decode(w.Expr)
		if err != nil {
			return nil, err
		}
		return &IsOdd{Expr: in}, nil
	case "is_even":
		in, err := decode(w.Expr)
		if err != nil {
			return nil, err
		}
		return &IsEven{Expr: in}, nil
	case "are_connected":
		set, err := decode(w.Set)
		if err != nil {
			return nil, err
		}
		return &AreConnected{Set: set}, nil
	case "call":
		if w.Name == "" {
			return nil, fmt.Errorf("%w: call node without name", ErrDecode)
		}
		ops, err := decodeAll(w.Operands)
		if err != nil {
			return nil, err
		}
		return &Call{Name: w.Name, Args: ops}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node tag %q", ErrDecode, w.Node)
	}
}

func decodeAll(in []*wireNode) ([]Expr, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]Expr, len(in))
	for i, w := range in {
		e, err := decode(w)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodePair(w *wireNode) (Expr, Expr, error) {
	l, err := decode(w.Left)
	if err != nil {
		return nil, nil, err
	}
	r, err := decode(w.Right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func decodeSubject(w *wireNode) (Expr, error) {
	if w == nil {
		return nil, nil
	}
	return decode(w)
}

func decodeLabel(s string) (board.Label, error) {
	switch s {
	case "innocent":
		return board.Innocent, nil
	case "criminal":
		return board.Criminal, nil
	default:
		return board.Unknown, fmt.Errorf("%w: label %q", ErrDecode, s)
	}
}

func decodeValue(w *wireValue) (Value, error) {
	if w == nil {
		return Value{}, fmt.Errorf("%w: literal without value", ErrDecode)
	}
	switch w.Type {
	case "position":
		return PositionValue(board.Position{Row: w.Row, Col: w.Col}), nil
	case "set":
		s := NewPosSet()
		for _, p := range w.Positions {
			s.Add(board.Position{Row: p.Row, Col: p.Col})
		}
		return SetValue(s), nil
	case "number":
		return NumberValue(w.Number), nil
	case "bool":
		return BoolValue(w.Bool), nil
	case "label":
		l, err := decodeLabel(w.Label)
		if err != nil {
			return Value{}, err
		}
		return LabelValue(l), nil
	case "profession":
		return ProfessionValue(w.Profession), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown value type %q", ErrDecode, w.Type)
	}
}
