// Package paths derives, for a keypad graph, every shortest sequence of
// direction presses between every ordered pair of keys.
//
// What:
//
//   - Build runs a single-source Dijkstra from each key. Each key keeps its
//     minimal distance together with the set of predecessor edges achieving
//     it, not a single parent.
//   - A backward depth-first walk over the predecessor sets then enumerates
//     all distinct minimal direction strings for each pair.
//   - The resulting Table is an immutable fact base: Paths, Distance, Pairs.
//
// Why keep ties:
//
//	Two equally short strings on one keypad may need a different number of
//	presses once they are typed through another keypad ("<v<" and "v<<"
//	from A to < differ in cost one layer up). Choosing early would be
//	locally fine and globally wrong, so the choice is left to the caller.
//
// Weights:
//
//	Keypads built with keypad.WithWeight get weighted distances; with the
//	default unit weights every string of a pair has length equal to the
//	pair's distance.
//
// Errors:
//
//   - ErrNilKeypad       nil graph passed to Build.
//   - ErrPairNotFound    lookup of a key that is not on the keypad.
//   - ErrTooManyPaths    a pair exceeds WithMaxPaths.
//   - ErrOptionViolation invalid option value.
package paths
