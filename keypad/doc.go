// Package keypad turns a keypad's physical button layout into a graph.
//
// What:
//
//   - Keys (Symbol) are nodes; each move is a directed, weighted edge labelled
//     with the Direction key (^ v < >) that causes it.
//   - Layouts are declared as adjacency facts (New) or as text rows (FromRows).
//   - Every fact implies its mirror, so the graph always describes a 2-D
//     layout rather than an arbitrary digraph.
//   - Numeric and Directional return the two standard keypads.
//
// Storage:
//
//	Keys live in a flat slice; each key holds a fixed array of neighbor
//	indices, one slot per direction. There are no pointers between nodes,
//	and a built Graph is never mutated.
//
// Errors:
//
//   - ErrEmptyKeypad, ErrBadDirection, ErrSelfLoop, ErrBadWeight,
//     ErrConflictingEdge, ErrDisconnected: malformed facts.
//   - ErrEmptyGrid, ErrNonRectangular, ErrDuplicateSymbol: malformed rows.
//
// Malformed layouts are construction defects: they are reported before any
// path table is derived from them.
package keypad
