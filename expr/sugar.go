package expr

import (
	"fmt"

	"github.com/kulgod/clues-solver/board"
)

// Expand rewrites every Call (convenience form) in e into canonical nodes.
// The rewrite is purely structural, applied bottom-up, and idempotent:
// expanding an already-canonical tree returns a structurally identical one.
// Nodes that are not rewritten keep their arity and operand types.
//
// Known forms, in the vocabulary of the game's hint language:
//
//	above(x) below(x) left_of(x) right_of(x) neighbors(x)
//	directly_above(x) directly_below(x) directly_left_of(x) directly_right_of(x)
//	criminals(S) innocents(S) count_criminals(S) count_innocents(S)
//	total_criminals() total_innocents()
//	with_profession(S, profession-literal)
//	is_criminal(x) is_innocent(x)
//
// Unknown names fail with ErrUnknownSugar, wrong argument counts with
// ErrArity, and a non-literal profession argument with ErrType.
func Expand(e Expr) (Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case *Literal, *CharacterRef, *AllCharacters, *EdgePositions:
		return e, nil
	case *Above:
		of, err := Expand(n.Of)
		if err != nil {
			return nil, err
		}
		return &Above{Of: of}, nil
	case *Below:
		of, err := Expand(n.Of)
		if err != nil {
			return nil, err
		}
		return &Below{Of: of}, nil
	case *LeftOf:
		of, err := Expand(n.Of)
		if err != nil {
			return nil, err
		}
		return &LeftOf{Of: of}, nil
	case *RightOf:
		of, err := Expand(n.Of)
		if err != nil {
			return nil, err
		}
		return &RightOf{Of: of}, nil
	case *Neighbors:
		of, err := Expand(n.Of)
		if err != nil {
			return nil, err
		}
		return &Neighbors{Of: of}, nil
	case *Filter:
		src, err := Expand(n.Source)
		if err != nil {
			return nil, err
		}
		pred, err := Expand(n.Pred)
		if err != nil {
			return nil, err
		}
		return &Filter{Source: src, Pred: pred}, nil
	case *Intersection:
		sets, err := expandAll(n.Sets)
		if err != nil {
			return nil, err
		}
		return &Intersection{Sets: sets}, nil
	case *Union:
		sets, err := expandAll(n.Sets)
		if err != nil {
			return nil, err
		}
		return &Union{Sets: sets}, nil
	case *And:
		exprs, err := expandAll(n.Exprs)
		if err != nil {
			return nil, err
		}
		return &And{Exprs: exprs}, nil
	case *Or:
		exprs, err := expandAll(n.Exprs)
		if err != nil {
			return nil, err
		}
		return &Or{Exprs: exprs}, nil
	case *Not:
		in, err := Expand(n.Expr)
		if err != nil {
			return nil, err
		}
		return &Not{Expr: in}, nil
	case *Count:
		set, err := Expand(n.Set)
		if err != nil {
			return nil, err
		}
		return &Count{Set: set}, nil
	case *Sum:
		exprs, err := expandAll(n.Exprs)
		if err != nil {
			return nil, err
		}
		return &Sum{Exprs: exprs}, nil
	case *HasLabel:
		sub, err := Expand(n.Subject)
		if err != nil {
			return nil, err
		}
		return &HasLabel{Subject: sub, Label: n.Label}, nil
	case *HasProfession:
		sub, err := Expand(n.Subject)
		if err != nil {
			return nil, err
		}
		return &HasProfession{Subject: sub, Profession: n.Profession}, nil
	case *IsEdge:
		sub, err := Expand(n.Subject)
		if err != nil {
			return nil, err
		}
		return &IsEdge{Subject: sub}, nil
	case *IsUnknown:
		sub, err := Expand(n.Subject)
		if err != nil {
			return nil, err
		}
		return &IsUnknown{Subject: sub}, nil
	case *Equal:
		l, r, err := expandPair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &Equal{Left: l, Right: r}, nil
	case *Greater:
		l, r, err := expandPair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &Greater{Left: l, Right: r}, nil
	case *GreaterEqual:
		l, r, err := expandPair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &GreaterEqual{Left: l, Right: r}, nil
	case *Less:
		l, r, err := expandPair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &Less{Left: l, Right: r}, nil
	case *LessEqual:
		l, r, err := expandPair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &LessEqual{Left: l, Right: r}, nil
	case *IsOdd:
		in, err := Expand(n.Expr)
		if err != nil {
			return nil, err
		}
		return &IsOdd{Expr: in}, nil
	case *IsEven:
		in, err := Expand(n.Expr)
		if err != nil {
			return nil, err
		}
		return &IsEven{Expr: in}, nil
	case *AreConnected:
		set, err := Expand(n.Set)
		if err != nil {
			return nil, err
		}
		return &AreConnected{Set: set}, nil
	case *Call:
		args, err := expandAll(n.Args)
		if err != nil {
			return nil, err
		}
		return rewriteCall(n.Name, args)
	default:
		return nil, fmt.Errorf("%w: unknown node %T", ErrType, e)
	}
}

func expandAll(in []Expr) ([]Expr, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]Expr, len(in))
	for i, e := range in {
		x, err := Expand(e)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func expandPair(l, r Expr) (Expr, Expr, error) {
	el, err := Expand(l)
	if err != nil {
		return nil, nil, err
	}
	er, err := Expand(r)
	if err != nil {
		return nil, nil, err
	}
	return el, er, nil
}

// rewriteCall maps one already-expanded convenience form onto canonical
// nodes. Argument subtrees may be shared between output nodes; trees are
// immutable, so sharing is safe.
func rewriteCall(name string, args []Expr) (Expr, error) {
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArity, name, n, len(args))
		}
		return nil
	}
	switch name {
	case "above":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Above{Of: args[0]}, nil
	case "below":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Below{Of: args[0]}, nil
	case "left_of":
		if err := want(1); err != nil {
			return nil, err
		}
		return &LeftOf{Of: args[0]}, nil
	case "right_of":
		if err := want(1); err != nil {
			return nil, err
		}
		return &RightOf{Of: args[0]}, nil
	case "neighbors":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Neighbors{Of: args[0]}, nil
	case "directly_above":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Intersection{Sets: []Expr{&Above{Of: args[0]}, &Neighbors{Of: args[0]}}}, nil
	case "directly_below":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Intersection{Sets: []Expr{&Below{Of: args[0]}, &Neighbors{Of: args[0]}}}, nil
	case "directly_left_of":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Intersection{Sets: []Expr{&LeftOf{Of: args[0]}, &Neighbors{Of: args[0]}}}, nil
	case "directly_right_of":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Intersection{Sets: []Expr{&RightOf{Of: args[0]}, &Neighbors{Of: args[0]}}}, nil
	case "criminals":
		if err := want(1); err != nil {
			return nil, err
		}
		return labelFilter(args[0], board.Criminal), nil
	case "innocents":
		if err := want(1); err != nil {
			return nil, err
		}
		return labelFilter(args[0], board.Innocent), nil
	case "count_criminals":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Count{Set: labelFilter(args[0], board.Criminal)}, nil
	case "count_innocents":
		if err := want(1); err != nil {
			return nil, err
		}
		return &Count{Set: labelFilter(args[0], board.Innocent)}, nil
	case "total_criminals":
		if err := want(0); err != nil {
			return nil, err
		}
		return &Count{Set: labelFilter(&AllCharacters{}, board.Criminal)}, nil
	case "total_innocents":
		if err := want(0); err != nil {
			return nil, err
		}
		return &Count{Set: labelFilter(&AllCharacters{}, board.Innocent)}, nil
	case "with_profession":
		if err := want(2); err != nil {
			return nil, err
		}
		lit, ok := args[1].(*Literal)
		if !ok || lit.Value.Kind() != KindProfession {
			return nil, fmt.Errorf("%w: with_profession needs a profession literal", ErrType)
		}
		return &Filter{Source: args[0], Pred: &HasProfession{Profession: lit.Value.Profession()}}, nil
	case "is_criminal":
		if err := want(1); err != nil {
			return nil, err
		}
		return &HasLabel{Subject: args[0], Label: board.Criminal}, nil
	case "is_innocent":
		if err := want(1); err != nil {
			return nil, err
		}
		return &HasLabel{Subject: args[0], Label: board.Innocent}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSugar, name)
	}
}

func labelFilter(src Expr, l board.Label) Expr {
	return &Filter{Source: src, Pred: &HasLabel{Label: l}}
}
