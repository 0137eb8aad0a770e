package expr

// Walk calls visit for every node of e in depth-first pre-order, operands
// left to right. Returning false from visit skips the node's children.
// Nil optional subjects are not visited.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	for _, c := range children(e) {
		Walk(c, visit)
	}
}

func children(e Expr) []Expr {
	switch n := e.(type) {
	case *Literal, *CharacterRef, *AllCharacters, *EdgePositions:
		return nil
	case *Above:
		return []Expr{n.Of}
	case *Below:
		return []Expr{n.Of}
	case *LeftOf:
		return []Expr{n.Of}
	case *RightOf:
		return []Expr{n.Of}
	case *Neighbors:
		return []Expr{n.Of}
	case *Filter:
		return []Expr{n.Source, n.Pred}
	case *Intersection:
		return n.Sets
	case *Union:
		return n.Sets
	case *And:
		return n.Exprs
	case *Or:
		return n.Exprs
	case *Not:
		return []Expr{n.Expr}
	case *Count:
		return []Expr{n.Set}
	case *Sum:
		return n.Exprs
	case *HasLabel:
		if n.Subject == nil {
			return nil
		}
		return []Expr{n.Subject}
	case *HasProfession:
		if n.Subject == nil {
			return nil
		}
		return []Expr{n.Subject}
	case *IsEdge:
		if n.Subject == nil {
			return nil
		}
		return []Expr{n.Subject}
	case *IsUnknown:
		if n.Subject == nil {
			return nil
		}
		return []Expr{n.Subject}
	case *Equal:
		return []Expr{n.Left, n.Right}
	case *Greater:
		return []Expr{n.Left, n.Right}
	case *GreaterEqual:
		return []Expr{n.Left, n.Right}
	case *Less:
		return []Expr{n.Left, n.Right}
	case *LessEqual:
		return []Expr{n.Left, n.Right}
	case *IsOdd:
		return []Expr{n.Expr}
	case *IsEven:
		return []Expr{n.Expr}
	case *AreConnected:
		return []Expr{n.Set}
	case *Call:
		return n.Args
	default:
		return nil
	}
}
