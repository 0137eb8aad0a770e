package expr

import "github.com/kulgod/clues-solver/board"

// Expr is one node of an immutable expression tree. The node set is closed:
// the unexported marker keeps outside packages from adding kinds, so the
// evaluator's type switch stays exhaustive. Trees are built once and carry
// no mutable state; sharing subtrees between expressions is safe.
type Expr interface {
	isExpr()
}

// Literal yields a fixed Value.
type Literal struct {
	Value Value
}

// CharacterRef yields the position of the named suspect.
// Evaluation fails with ErrReference if no such suspect exists.
type CharacterRef struct {
	Name string
}

// AllCharacters yields the set of every occupied cell on the board.
type AllCharacters struct{}

// EdgePositions yields the set of every border cell of the grid,
// corners included.
type EdgePositions struct{}

// Above yields the cells in the same column as the source, with strictly
// smaller row. A set-valued source unions the rays of all its members.
type Above struct {
	Of Expr
}

// Below yields the cells in the same column as the source, with strictly
// larger row. A set-valued source unions the rays of all its members.
type Below struct {
	Of Expr
}

// LeftOf yields the cells in the same row as the source, with strictly
// smaller column. A set-valued source unions the rays of all its members.
type LeftOf struct {
	Of Expr
}

// RightOf yields the cells in the same row as the source, with strictly
// larger column. A set-valued source unions the rays of all its members.
type RightOf struct {
	Of Expr
}

// Neighbors yields the king-adjacent cells of the source (Chebyshev
// distance exactly 1, clipped to the grid). A set-valued source unions the
// neighborhoods of all its members; the source's own members are excluded
// only by the distance rule, never specially.
type Neighbors struct {
	Of Expr
}

// Filter yields the members of Source for which Pred holds. Pred is
// evaluated once per member with that member bound as the implicit
// position; the first member whose predicate errors fails the whole Filter.
type Filter struct {
	Source Expr
	Pred   Expr
}

// Intersection yields the cells present in every operand set.
// Zero operands fail with ErrArity.
type Intersection struct {
	Sets []Expr
}

// Union yields the cells present in any operand set.
// Zero operands fail with ErrArity.
type Union struct {
	Sets []Expr
}

// And yields the conjunction of its boolean operands.
// Zero operands fail with ErrArity.
type And struct {
	Exprs []Expr
}

// Or yields the disjunction of its boolean operands.
// Zero operands fail with ErrArity.
type Or struct {
	Exprs []Expr
}

// Not yields the negation of its boolean operand.
type Not struct {
	Expr Expr
}

// Count yields the cardinality of its set operand.
type Count struct {
	Set Expr
}

// Sum yields the sum of its numeric operands.
// Zero operands fail with ErrArity.
type Sum struct {
	Exprs []Expr
}

// HasLabel tests the verdict of the suspect at a cell. A nil Subject uses
// the implicit position bound by the enclosing Filter. An empty cell fails
// with ErrReference; an unrevealed suspect fails with ErrUnresolved.
type HasLabel struct {
	Subject Expr
	Label   board.Label
}

// HasProfession tests the occupation of the suspect at a cell. A nil
// Subject uses the implicit position bound by the enclosing Filter.
// An empty cell fails with ErrReference.
type HasProfession struct {
	Subject    Expr
	Profession string
}

// IsEdge tests whether a cell touches the grid border. A nil Subject uses
// the implicit position bound by the enclosing Filter.
type IsEdge struct {
	Subject Expr
}

// IsUnknown tests whether the suspect at a cell is still unrevealed on the
// board being evaluated. A nil Subject uses the implicit position bound by
// the enclosing Filter. An empty cell fails with ErrReference. On a fully
// resolved trial board it is false everywhere.
type IsUnknown struct {
	Subject Expr
}

// Equal tests deep equality of two same-kinded values.
// Operands of differing kinds fail with ErrType.
type Equal struct {
	Left, Right Expr
}

// Greater tests Left > Right over numbers.
type Greater struct {
	Left, Right Expr
}

// GreaterEqual tests Left >= Right over numbers.
type GreaterEqual struct {
	Left, Right Expr
}

// Less tests Left < Right over numbers.
type Less struct {
	Left, Right Expr
}

// LessEqual tests Left <= Right over numbers.
type LessEqual struct {
	Left, Right Expr
}

// IsOdd tests oddness of a numeric operand.
type IsOdd struct {
	Expr Expr
}

// IsEven tests evenness of a numeric operand.
type IsEven struct {
	Expr Expr
}

// AreConnected tests whether a set forms one king-adjacency component.
// The empty set and singletons are vacuously connected.
type AreConnected struct {
	Set Expr
}

// Call is a convenience (sugar) form: a named call over argument trees.
// Only Expand understands Calls; the evaluator rejects them with ErrType.
type Call struct {
	Name string
	Args []Expr
}

func (*Literal) isExpr()       {}
func (*CharacterRef) isExpr()  {}
func (*AllCharacters) isExpr() {}
func (*EdgePositions) isExpr() {}
func (*Above) isExpr()         {}
func (*Below) isExpr()         {}
func (*LeftOf) isExpr()        {}
func (*RightOf) isExpr()       {}
func (*Neighbors) isExpr()     {}
func (*Filter) isExpr()        {}
func (*Intersection) isExpr()  {}
func (*Union) isExpr()         {}
func (*And) isExpr()           {}
func (*Or) isExpr()            {}
func (*Not) isExpr()           {}
func (*Count) isExpr()         {}
func (*Sum) isExpr()           {}
func (*HasLabel) isExpr()      {}
func (*HasProfession) isExpr() {}
func (*IsEdge) isExpr()        {}
func (*IsUnknown) isExpr()     {}
func (*Equal) isExpr()         {}
func (*Greater) isExpr()       {}
func (*GreaterEqual) isExpr()  {}
func (*Less) isExpr()          {}
func (*LessEqual) isExpr()     {}
func (*IsOdd) isExpr()         {}
func (*IsEven) isExpr()        {}
func (*AreConnected) isExpr()  {}
func (*Call) isExpr()          {}
