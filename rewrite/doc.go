// Package rewrite expands a message into all minimal messages one keypad
// layer up.
//
// A message is a sequence of keys to register on some keypad. The actuator
// over that keypad starts on Confirm, moves from key to key with direction
// presses and registers each key with a Confirm press. For every pair of
// consecutive keys (including the implicit leading Confirm) there may be
// several equally short direction strings; Rewrite returns the full cross
// product of those choices, each segment terminated by Confirm.
//
// Enumeration is exponential in the number of layers. It is used directly
// only for the first layer, where messages are short; deeper layers are
// handled by package minlen without materializing any message.
package rewrite
