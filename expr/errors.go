package expr

import "errors"

var (
	// ErrReference indicates an unknown suspect name or an empty cell
	// where an occupant was required.
	ErrReference = errors.New("expr: unknown reference")
	// ErrUnresolved indicates a label read from a cell whose suspect is
	// still Unknown. The solver distinguishes it from ErrReference: on a
	// partially assigned trial it means "not decidable yet", on a fully
	// resolved trial it cannot occur.
	ErrUnresolved = errors.New("expr: label of unresolved suspect")
	// ErrType indicates an operand whose value kind violates the node's
	// type contract.
	ErrType = errors.New("expr: type mismatch")
	// ErrArity indicates a variadic node or sugar form given an
	// unacceptable operand count.
	ErrArity = errors.New("expr: wrong operand count")
	// ErrUnknownSugar indicates a Call whose name matches no known
	// convenience form.
	ErrUnknownSugar = errors.New("expr: unknown sugar form")
	// ErrDecode indicates malformed serialized expression input.
	ErrDecode = errors.New("expr: malformed encoding")
)
