// Package paths defines the shortest-path table type, its options and
// sentinel errors.
package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypress/keypad"
)

// Sentinel errors returned by Build and Table lookups.
var (
	// ErrNilKeypad indicates that Build was called with a nil graph.
	ErrNilKeypad = errors.New("paths: keypad is nil")

	// ErrPairNotFound indicates a lookup for a key pair the table does not hold.
	// With a connected keypad this only happens for keys that are not on it.
	ErrPairNotFound = errors.New("paths: pair not found")

	// ErrTooManyPaths indicates that a pair has more shortest paths than
	// WithMaxPaths allows.
	ErrTooManyPaths = errors.New("paths: too many shortest paths")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Pair is an ordered (from, to) key pair.
type Pair struct {
	From keypad.Symbol
	To   keypad.Symbol
}

// String renders the pair as "from->to".
func (p Pair) String() string { return p.From.String() + "->" + p.To.String() }

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// MaxPaths, if > 0, caps the number of shortest paths kept per pair.
	// Exceeding it fails Build with ErrTooManyPaths. 0 means no cap.
	MaxPaths int

	err error
}

// DefaultOptions returns Options with no cap on paths per pair.
func DefaultOptions() Options {
	return Options{MaxPaths: 0}
}

// WithMaxPaths limits the number of shortest paths enumerated per pair.
//
//	n > 0:  fail with ErrTooManyPaths when a pair has more than n paths
//	n == 0: no limit
//	n < 0:  invalid option, ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
