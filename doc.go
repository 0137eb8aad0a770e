// Package cluesolver is a deduction engine for grid-based suspect
// puzzles — formalize each revealed hint as an expression tree, then ask
// whether the clues force any verdict with certainty.
//
// 🚀 What is clues-solver?
//
//	A small, composable library split into four layers:
//		• board/  — the immutable grid snapshot: suspects, labels, geometry
//		• expr/   — typed values and the clue expression language (AST,
//		  convenience-form expansion, JSON wire codec)
//		• eval/   — the pure evaluator: one expression against one board state
//		• solver/ — certainty deduction: parallel enumeration or pruned
//		  backtracking over every unrevealed assignment
//
// ✨ Why choose clues-solver?
//
//   - Sound by construction – a verdict is recommended only when every
//     consistent solution agrees on it
//   - Deterministic – identical inputs give identical recommendations,
//     regardless of worker count or assignment order
//   - Immutable inputs – boards and expression trees are never mutated,
//     so concurrent trials need no locks
//   - Portable clues – the JSON codec round-trips every expression,
//     convenience forms included
//
// The cmd/cluesolver command wraps the library for YAML board files:
//
//	cluesolver solve puzzle.yaml --justify
//
// Quick ASCII example — a 2x2 grid, one revealed criminal:
//
//	    A1[C]──B1[?]
//	     │       │
//	    A2[?]──B2[?]
//
//	"None of my neighbors is a criminal" from A1 forces all three.
//
//	go get github.com/kulgod/clues-solver
package cluesolver
