// Package keypad defines symbols, directions, adjacency facts, options and
// sentinel errors for keypad graphs.
package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad construction.
var (
	// ErrEmptyKeypad indicates that no adjacency facts were supplied.
	ErrEmptyKeypad = errors.New("keypad: no adjacency facts")

	// ErrBadDirection indicates a fact whose direction is not one of ^ v < >.
	ErrBadDirection = errors.New("keypad: invalid direction")

	// ErrSelfLoop indicates a fact linking a key to itself.
	ErrSelfLoop = errors.New("keypad: key linked to itself")

	// ErrConflictingEdge indicates that a key already has a different neighbor
	// in the given direction, or that a mirror edge contradicts an earlier fact.
	ErrConflictingEdge = errors.New("keypad: conflicting adjacency")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("keypad: edge weight must be positive")

	// ErrDisconnected indicates that some keys cannot be reached from the others.
	ErrDisconnected = errors.New("keypad: graph is not connected")

	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("keypad: layout must have at least one row and one column")

	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all layout rows must have the same length")

	// ErrDuplicateSymbol indicates the same key label used twice in a layout.
	ErrDuplicateSymbol = errors.New("keypad: duplicate key in layout")
)

// Symbol is the label of a single key.
type Symbol byte

// Confirm is the key that makes the layer below register a press.
// Every actuator starts its work resting on it.
const Confirm Symbol = 'A'

// Hole marks a missing cell in a text layout.
const Hole = ' '

// String returns the key label.
func (s Symbol) String() string { return string(rune(s)) }

// Direction is one of the four movement keys.
type Direction byte

// Movement keys.
const (
	Up    Direction = '^'
	Down  Direction = 'v'
	Left  Direction = '<'
	Right Direction = '>'
)

// numDirections is the size of a node's outgoing edge array.
const numDirections = 4

// Directions lists the movement keys in the order edges are iterated.
var Directions = [numDirections]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four movement keys.
func (d Direction) Valid() bool { return d.index() >= 0 }

// Opposite returns the direction that undoes d.
// It returns 0 for an invalid direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return 0
}

// Symbol returns the key that has to be pressed to move in direction d.
func (d Direction) Symbol() Symbol { return Symbol(d) }

// String returns the key label of d.
func (d Direction) String() string { return string(rune(d)) }

func (d Direction) index() int {
	switch d {
	case Up:
		return 0
	case Down:
		return 1
	case Left:
		return 2
	case Right:
		return 3
	}

	return -1
}

// Fact states that pressing Dir on key From moves the actuator to key To.
// The reverse move (To, Dir.Opposite(), From) is implied.
type Fact struct {
	From Symbol
	Dir  Direction
	To   Symbol
}

// String renders the fact as "from dir to".
func (f Fact) String() string {
	return fmt.Sprintf("%s %s %s", f.From, f.Dir, f.To)
}

// Edge is a single directed move between two keys.
type Edge struct {
	From   Symbol
	To     Symbol
	Dir    Direction
	Weight int64
}

// Option configures keypad construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Weight returns the cost of the move described by a fact (and its mirror).
	// Defaults to 1 for every fact.
	Weight func(Fact) int64
}

// DefaultOptions returns Options with unit weights.
func DefaultOptions() Options {
	return Options{
		Weight: func(Fact) int64 { return 1 },
	}
}

// WithWeight overrides the cost of individual moves.
// Weights must be positive; other values fail construction with ErrBadWeight.
func WithWeight(fn func(Fact) int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}
