// Package expr defines the declarative constraint language clues are
// formalized in: a closed set of immutable expression nodes over board
// state, the typed values they reduce to, a sugar expander for convenience
// call forms, and a lossless JSON encoding for portable clue libraries.
//
// What:
//
//   - Value: tagged union over Position, PositionSet, Number, Boolean,
//     Label, and Profession.
//   - Expr: sealed interface over the closed node set (literals, set
//     generators, set operations, logic, counting, predicates,
//     comparisons) plus Call, the un-expanded convenience form.
//   - Expand: pure bottom-up rewrite of Call forms into canonical nodes.
//     Idempotent; canonical trees pass through untouched.
//   - Marshal/Unmarshal: tagged-node JSON encoding that round-trips every
//     well-formed tree structurally.
//
// Why:
//
//   - Hints arrive as natural language and are authored into expression
//     trees elsewhere; a closed node set with an exhaustive evaluator
//     (package eval) keeps unhandled constructs a compile-time concern.
//   - Trees are built once and evaluated once per solver trial, so nodes
//     hold no hidden mutable state.
//
// Errors:
//
//   - ErrReference: an entity name or cell that does not exist.
//   - ErrUnresolved: a label read from a still-unrevealed cell.
//   - ErrType: an operand that violates a node's type contract.
//   - ErrArity: a variadic node given zero operands, or a sugar form with
//     the wrong argument count.
//   - ErrUnknownSugar: a Call naming no known convenience form.
//   - ErrDecode: malformed serialized input.
package expr
