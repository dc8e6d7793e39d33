// Package keypress computes the shortest sequence of button presses a human
// needs to make a chain of robots type a door code.
//
// The human presses a directional keypad. Each press moves or triggers a
// robot arm hovering over another directional keypad, and so on down the
// chain, until the last robot types on the numeric door keypad. Every arm
// starts over the confirm key 'A'.
//
// What is inside:
//
//	keypad/     keypad graphs: keys, four-way adjacency, built-in layouts, text rows
//	paths/      all shortest direction strings between every pair of keys
//	rewrite/    full expansion of a message into the inputs one layer up
//	minlen/     memoized minimal input length for arbitrarily many layers
//	complexity/ door code scores (length × numeric part) and their sum
//
// Commands and helpers:
//
//	cmd/keypress CLI: complexity, paths, version
//	examples/    standalone programs using the packages above
//
// Quick start:
//
//	e, _ := complexity.NewDefault()
//	total, _ := e.Sum([]string{"029A", "980A", "179A", "456A", "379A"}, 2)
//	// total == 126384
//
// Two layers can still be enumerated outright. At 25 layers the inputs are
// around 10^11 presses long and only their length is computed, never the
// inputs themselves.
package keypress
