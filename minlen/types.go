// Package minlen defines the minimizer's options, statistics and sentinel
// errors.
package minlen

import (
	"errors"

	"github.com/katalvlaran/keypress/keypad"
)

// Sentinel errors returned by the Minimizer.
var (
	// ErrNilSource indicates that New was given a nil PathSource.
	ErrNilSource = errors.New("minlen: path source is nil")

	// ErrNegativeDepth indicates a depth below zero.
	ErrNegativeDepth = errors.New("minlen: depth must be non-negative")

	// ErrNoCandidates indicates a pair for which the source returned no path.
	ErrNoCandidates = errors.New("minlen: no candidate paths")

	// ErrIncompleteAlphabet indicates that a candidate path uses a key outside
	// the alphabet given to Layers.
	ErrIncompleteAlphabet = errors.New("minlen: candidate leaves the alphabet")

	// ErrOverflow indicates a press count that does not fit in an int64.
	ErrOverflow = errors.New("minlen: press count overflows int64")
)

// key identifies one memoized subproblem: the cheapest way to move the
// actuator from prev to cur and register cur, depth layers below the human.
type key struct {
	prev  keypad.Symbol
	cur   keypad.Symbol
	depth int
}

// overflowed marks a cached subproblem whose count exceeds math.MaxInt64.
const overflowed int64 = -1

// Stats reports cache behaviour since construction or the last Reset.
type Stats struct {
	Hits    int64 // lookups answered from the cache
	Misses  int64 // lookups that had to be computed
	Entries int   // memoized subproblems currently held
}

// Option configures a Minimizer.
type Option func(*Options)

// Options holds Minimizer parameters.
type Options struct {
	// OnCompute, if non-nil, is called once for every subproblem computed
	// (every cache miss), before its candidates are examined.
	OnCompute func(prev, cur keypad.Symbol, depth int)
}

// DefaultOptions returns Options with no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithOnCompute installs a hook observing every computed subproblem.
func WithOnCompute(fn func(prev, cur keypad.Symbol, depth int)) Option {
	return func(o *Options) {
		o.OnCompute = fn
	}
}
