// Package minlen computes the length of the shortest human input for a stack
// of directional keypad layers, without building any of the inputs.
//
// Model:
//
//	Every actuator rests on Confirm after registering a key. Pressing Confirm
//	on the layer above is what makes the layer below register. Consequently
//	the cost of moving from prev to cur and registering cur depends only on
//	(prev, cur) and on how many layers sit above; it never depends on the
//	rest of the message.
//
// That independence gives the recurrence implemented by MinLength:
//
//	MinLength(p, c, 0) = 1
//	MinLength(p, c, k) = min_{d ∈ Paths(p, c)} MessageLength(d + "A", k-1)
//	MessageLength(m, k) = Σ MinLength(x_i, x_{i+1}, k) over pairs of "A"+m
//
// The Minimizer memoizes MinLength per (p, c, k). With 5 directional keys
// there are at most 25 entries per depth, so depth 25 needs a few hundred
// evaluations where enumeration would need trillions of strings.
//
// Layers computes the same table bottom-up, one full level at a time. It is
// the form used to cross-check the memoized recursion.
package minlen
