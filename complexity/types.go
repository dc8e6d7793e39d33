// Package complexity defines evaluation strategies, report types, options
// and sentinel errors.
package complexity

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Evaluator.
var (
	// ErrNilSource indicates that New was given a nil path source.
	ErrNilSource = errors.New("complexity: path source is nil")

	// ErrNoNumericPart indicates a code that contains no digit.
	ErrNoNumericPart = errors.New("complexity: code has no numeric part")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("complexity: invalid option supplied")
)

// Strategy selects how the numeric layer is priced.
type Strategy int

const (
	// StrategyEnumerate materializes every rewrite of the code on the first
	// directional layer and prices each one with the minimizer.
	StrategyEnumerate Strategy = iota

	// StrategyMinimize applies the minimizer recurrence to the numeric layer
	// as well, choosing the cheapest route per key pair. No rewrite is
	// materialized.
	StrategyMinimize
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyEnumerate:
		return "enumerate"
	case StrategyMinimize:
		return "minimize"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name produced by Strategy.String back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "enumerate":
		return StrategyEnumerate, nil
	case "minimize":
		return StrategyMinimize, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Entry is the evaluation of a single code.
type Entry struct {
	Code       string
	Length     int64 // fewest human presses
	Value      int64 // numeric part of the code
	Complexity int64 // Length * Value
}

// Report is the evaluation of a list of codes.
type Report struct {
	Depth   int
	Entries []Entry
	Total   int64 // sum of Complexity over Entries
}

// Option configures an Evaluator.
type Option func(*Options)

// Options holds Evaluator parameters.
type Options struct {
	Strategy Strategy

	// RewriteLimit caps the rewrites enumerated per code under
	// StrategyEnumerate. 0 means no cap.
	RewriteLimit int

	err error
}

// DefaultOptions returns Options using StrategyEnumerate without a cap.
func DefaultOptions() Options {
	return Options{Strategy: StrategyEnumerate}
}

// WithStrategy selects the numeric layer strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyEnumerate && s != StrategyMinimize {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithRewriteLimit caps the rewrites enumerated per code.
func WithRewriteLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RewriteLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.RewriteLimit = n
	}
}
