package eval

import (
	"fmt"

	"github.com/kulgod/clues-solver/board"
	"github.com/kulgod/clues-solver/expr"
)

// Evaluate reduces the canonical expression e against the snapshot s.
// It is pure: repeated calls with the same inputs yield identical results
// and no observable side effects. Sugar Calls must be expanded first;
// evaluating one fails with expr.ErrType.
func Evaluate(e expr.Expr, s State) (expr.Value, error) {
	return env{state: s}.eval(e)
}

// env carries the snapshot plus the ambient candidate position bound while
// a Filter tests one of its members.
type env struct {
	state State
	bound *board.Position
}

func (v env) eval(e expr.Expr) (expr.Value, error) {
	switch n := e.(type) {
	case *expr.Literal:
		return n.Value, nil

	case *expr.CharacterRef:
		s, ok := v.state.ByName(n.Name)
		if !ok {
			return expr.Value{}, fmt.Errorf("%w: no suspect named %q", expr.ErrReference, n.Name)
		}
		return expr.PositionValue(s.Pos), nil

	case *expr.AllCharacters:
		return expr.SetValue(expr.NewPosSet(v.state.Positions()...)), nil

	case *expr.EdgePositions:
		out := expr.NewPosSet()
		rows, cols := v.state.Rows(), v.state.Cols()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
					out.Add(board.Position{Row: r, Col: c})
				}
			}
		}
		return expr.SetValue(out), nil

	case *expr.Above:
		return v.directional(n.Of, func(p board.Position, out expr.PosSet) {
			for r := 0; r < p.Row; r++ {
				out.Add(board.Position{Row: r, Col: p.Col})
			}
		})
	case *expr.Below:
		rows := v.state.Rows()
		return v.directional(n.Of, func(p board.Position, out expr.PosSet) {
			for r := p.Row + 1; r < rows; r++ {
				out.Add(board.Position{Row: r, Col: p.Col})
			}
		})
	case *expr.LeftOf:
		return v.directional(n.Of, func(p board.Position, out expr.PosSet) {
			for c := 0; c < p.Col; c++ {
				out.Add(board.Position{Row: p.Row, Col: c})
			}
		})
	case *expr.RightOf:
		cols := v.state.Cols()
		return v.directional(n.Of, func(p board.Position, out expr.PosSet) {
			for c := p.Col + 1; c < cols; c++ {
				out.Add(board.Position{Row: p.Row, Col: c})
			}
		})

	case *expr.Neighbors:
		rows, cols := v.state.Rows(), v.state.Cols()
		return v.directional(n.Of, func(p board.Position, out expr.PosSet) {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					q := board.Position{Row: p.Row + dr, Col: p.Col + dc}
					if q.Row >= 0 && q.Row < rows && q.Col >= 0 && q.Col < cols {
						out.Add(q)
					}
				}
			}
		})

	case *expr.Filter:
		src, err := v.evalSet(n.Source)
		if err != nil {
			return expr.Value{}, err
		}
		out := expr.NewPosSet()
		for _, p := range src.Sorted() {
			p := p
			inner := env{state: v.state, bound: &p}
			keep, err := inner.evalBool(n.Pred)
			if err != nil {
				return expr.Value{}, err
			}
			if keep {
				out.Add(p)
			}
		}
		return expr.SetValue(out), nil

	case *expr.Intersection:
		if len(n.Sets) == 0 {
			return expr.Value{}, fmt.Errorf("%w: intersection of zero sets", expr.ErrArity)
		}
		acc, err := v.evalSet(n.Sets[0])
		if err != nil {
			return expr.Value{}, err
		}
		for _, se := range n.Sets[1:] {
			s, err := v.evalSet(se)
			if err != nil {
				return expr.Value{}, err
			}
			acc = acc.Intersect(s)
		}
		return expr.SetValue(acc), nil

	case *expr.Union:
		if len(n.Sets) == 0 {
			return expr.Value{}, fmt.Errorf("%w: union of zero sets", expr.ErrArity)
		}
		acc := expr.NewPosSet()
		for _, se := range n.Sets {
			s, err := v.evalSet(se)
			if err != nil {
				return expr.Value{}, err
			}
			acc = acc.Union(s)
		}
		return expr.SetValue(acc), nil

	case *expr.And:
		if len(n.Exprs) == 0 {
			return expr.Value{}, fmt.Errorf("%w: and of zero operands", expr.ErrArity)
		}
		all := true
		for _, be := range n.Exprs {
			b, err := v.evalBool(be)
			if err != nil {
				return expr.Value{}, err
			}
			all = all && b
		}
		return expr.BoolValue(all), nil

	case *expr.Or:
		if len(n.Exprs) == 0 {
			return expr.Value{}, fmt.Errorf("%w: or of zero operands", expr.ErrArity)
		}
		any := false
		for _, be := range n.Exprs {
			b, err := v.evalBool(be)
			if err != nil {
				return expr.Value{}, err
			}
			any = any || b
		}
		return expr.BoolValue(any), nil

	case *expr.Not:
		b, err := v.evalBool(n.Expr)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(!b), nil

	case *expr.Count:
		s, err := v.evalSet(n.Set)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.NumberValue(s.Len()), nil

	case *expr.Sum:
		if len(n.Exprs) == 0 {
			return expr.Value{}, fmt.Errorf("%w: sum of zero operands", expr.ErrArity)
		}
		total := 0
		for _, ne := range n.Exprs {
			x, err := v.evalNum(ne)
			if err != nil {
				return expr.Value{}, err
			}
			total += x
		}
		return expr.NumberValue(total), nil

	case *expr.HasLabel:
		if !n.Label.Resolved() {
			return expr.Value{}, fmt.Errorf("%w: has_label requires Innocent or Criminal", expr.ErrType)
		}
		s, err := v.occupant(n.Subject)
		if err != nil {
			return expr.Value{}, err
		}
		if s.Label == board.Unknown {
			return expr.Value{}, fmt.Errorf("%w: %s (%s)", expr.ErrUnresolved, s.Name, s.Pos)
		}
		return expr.BoolValue(s.Label == n.Label), nil

	case *expr.HasProfession:
		s, err := v.occupant(n.Subject)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(s.Profession == n.Profession), nil

	case *expr.IsEdge:
		p, err := v.subject(n.Subject)
		if err != nil {
			return expr.Value{}, err
		}
		rows, cols := v.state.Rows(), v.state.Cols()
		return expr.BoolValue(p.Row == 0 || p.Row == rows-1 || p.Col == 0 || p.Col == cols-1), nil

	case *expr.IsUnknown:
		s, err := v.occupant(n.Subject)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(s.Label == board.Unknown), nil

	case *expr.Equal:
		l, err := v.eval(n.Left)
		if err != nil {
			return expr.Value{}, err
		}
		r, err := v.eval(n.Right)
		if err != nil {
			return expr.Value{}, err
		}
		if l.Kind() != r.Kind() {
			return expr.Value{}, fmt.Errorf("%w: equal over %s and %s", expr.ErrType, l.Kind(), r.Kind())
		}
		return expr.BoolValue(l.Equal(r)), nil

	case *expr.Greater:
		return v.ordering(n.Left, n.Right, func(l, r int) bool { return l > r })
	case *expr.GreaterEqual:
		return v.ordering(n.Left, n.Right, func(l, r int) bool { return l >= r })
	case *expr.Less:
		return v.ordering(n.Left, n.Right, func(l, r int) bool { return l < r })
	case *expr.LessEqual:
		return v.ordering(n.Left, n.Right, func(l, r int) bool { return l <= r })

	case *expr.IsOdd:
		x, err := v.evalNum(n.Expr)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(x%2 != 0), nil

	case *expr.IsEven:
		x, err := v.evalNum(n.Expr)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(x%2 == 0), nil

	case *expr.AreConnected:
		s, err := v.evalSet(n.Set)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.BoolValue(connected(s)), nil

	case *expr.Call:
		return expr.Value{}, fmt.Errorf("%w: unexpanded sugar call %q", expr.ErrType, n.Name)

	case nil:
		return expr.Value{}, fmt.Errorf("%w: nil expression", expr.ErrType)

	default:
		return expr.Value{}, fmt.Errorf("%w: unknown node %T", expr.ErrType, e)
	}
}

// directional evaluates a Position-or-set source and unions ray(p) over all
// source members.
func (v env) directional(of expr.Expr, ray func(board.Position, expr.PosSet)) (expr.Value, error) {
	val, err := v.eval(of)
	if err != nil {
		return expr.Value{}, err
	}
	out := expr.NewPosSet()
	switch val.Kind() {
	case expr.KindPosition:
		ray(val.Pos(), out)
	case expr.KindSet:
		for _, p := range val.Set().Sorted() {
			ray(p, out)
		}
	default:
		return expr.Value{}, fmt.Errorf("%w: directional source is %s, want position or set", expr.ErrType, val.Kind())
	}
	return expr.SetValue(out), nil
}

func (v env) evalBool(e expr.Expr) (bool, error) {
	val, err := v.eval(e)
	if err != nil {
		return false, err
	}
	if val.Kind() != expr.KindBool {
		return false, fmt.Errorf("%w: got %s, want bool", expr.ErrType, val.Kind())
	}
	return val.Bool(), nil
}

func (v env) evalNum(e expr.Expr) (int, error) {
	val, err := v.eval(e)
	if err != nil {
		return 0, err
	}
	if val.Kind() != expr.KindNumber {
		return 0, fmt.Errorf("%w: got %s, want number", expr.ErrType, val.Kind())
	}
	return val.Num(), nil
}

func (v env) evalSet(e expr.Expr) (expr.PosSet, error) {
	val, err := v.eval(e)
	if err != nil {
		return nil, err
	}
	if val.Kind() != expr.KindSet {
		return nil, fmt.Errorf("%w: got %s, want set", expr.ErrType, val.Kind())
	}
	return val.Set(), nil
}

func (v env) ordering(le, re expr.Expr, cmp func(int, int) bool) (expr.Value, error) {
	l, err := v.evalNum(le)
	if err != nil {
		return expr.Value{}, err
	}
	r, err := v.evalNum(re)
	if err != nil {
		return expr.Value{}, err
	}
	return expr.BoolValue(cmp(l, r)), nil
}

// subject resolves a predicate subject: a nil expression means the position
// bound by the enclosing Filter.
func (v env) subject(sub expr.Expr) (board.Position, error) {
	if sub == nil {
		if v.bound == nil {
			return board.Position{}, fmt.Errorf("%w: no candidate position bound outside a filter", expr.ErrReference)
		}
		return *v.bound, nil
	}
	val, err := v.eval(sub)
	if err != nil {
		return board.Position{}, err
	}
	if val.Kind() != expr.KindPosition {
		return board.Position{}, fmt.Errorf("%w: predicate subject is %s, want position", expr.ErrType, val.Kind())
	}
	return val.Pos(), nil
}

// occupant resolves a predicate subject to the suspect occupying it.
func (v env) occupant(sub expr.Expr) (board.Suspect, error) {
	p, err := v.subject(sub)
	if err != nil {
		return board.Suspect{}, err
	}
	s, ok := v.state.At(p)
	if !ok {
		return board.Suspect{}, fmt.Errorf("%w: no suspect at %s", expr.ErrReference, p)
	}
	return s, nil
}
