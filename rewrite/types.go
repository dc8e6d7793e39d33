// Package rewrite defines the path source contract, options and sentinel
// errors of the message rewriter.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypress/keypad"
)

// Sentinel errors returned by the Rewriter.
var (
	// ErrNilSource indicates that New was given a nil PathSource.
	ErrNilSource = errors.New("rewrite: path source is nil")

	// ErrTooManyRewrites indicates that a message expands into more rewrites
	// than WithLimit allows.
	ErrTooManyRewrites = errors.New("rewrite: too many rewrites")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("rewrite: invalid option supplied")
)

// PathSource yields the minimal direction strings between two keys.
// *paths.Table satisfies it.
type PathSource interface {
	Paths(from, to keypad.Symbol) ([]string, error)
}

// Option configures a Rewriter.
type Option func(*Options)

// Options holds Rewriter parameters.
type Options struct {
	// Limit, if > 0, caps the number of rewrites Rewrite may return.
	// 0 means no cap.
	Limit int

	err error
}

// DefaultOptions returns Options with no cap.
func DefaultOptions() Options {
	return Options{Limit: 0}
}

// WithLimit caps the number of rewrites materialized by Rewrite.
//
//	n > 0:  fail with ErrTooManyRewrites above n
//	n == 0: no limit
//	n < 0:  invalid option, ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}
