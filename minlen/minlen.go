package minlen

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/keypress/keypad"
)

//go:generate mockgen -source=minlen.go -destination=mocks/mock_pathsource.go -package=mocks

// PathSource yields the minimal direction strings between two keys of the
// directional keypad. *paths.Table satisfies it.
type PathSource interface {
	Paths(from, to keypad.Symbol) ([]string, error)
}

// Minimizer computes the fewest human presses needed to make a stack of
// directional layers register a message, without materializing any
// intermediate message.
//
// Values are memoized by (prev, cur, depth) for the lifetime of the
// Minimizer. The cache is never evicted, so repeated queries over many
// messages share all work. A Minimizer is not safe for concurrent use.
type Minimizer struct {
	src   PathSource
	opts  Options
	cache map[key]int64
	stats Stats
}

// New returns a Minimizer over src.
func New(src PathSource, opts ...Option) (*Minimizer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Minimizer{
		src:   src,
		opts:  o,
		cache: make(map[key]int64),
	}, nil
}

// MinLength returns the fewest presses, depth layers up, that move the
// actuator from prev to cur and register cur.
//
// Recurrence:
//
//	MinLength(p, c, 0) = 1
//	MinLength(p, c, k) = min over d in Paths(p, c) of MessageLength(d+"A", k-1)
//
// Depth 0 never consults the source and so never validates keys: any pair
// costs 1 there. Negative depths fail with ErrNegativeDepth before any
// recursion. Counts past math.MaxInt64 fail with ErrOverflow.
func (m *Minimizer) MinLength(prev, cur keypad.Symbol, depth int) (int64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	return m.minLength(prev, cur, depth)
}

// MessageLength returns the fewest presses, depth layers up, that make the
// actuator (starting on Confirm) register msg. An empty message costs 0.
// At depth 0 the result is len(msg) whatever the keys are.
func (m *Minimizer) MessageLength(msg string, depth int) (int64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	return m.messageLength(msg, depth)
}

// Stats returns a snapshot of cache counters.
func (m *Minimizer) Stats() Stats {
	s := m.stats
	s.Entries = len(m.cache)

	return s
}

// Reset drops every memoized value and zeroes the counters.
func (m *Minimizer) Reset() {
	m.cache = make(map[key]int64)
	m.stats = Stats{}
}

func (m *Minimizer) messageLength(msg string, depth int) (int64, error) {
	var total int64
	prev := keypad.Confirm
	for i := 0; i < len(msg); i++ {
		cur := keypad.Symbol(msg[i])
		n, err := m.minLength(prev, cur, depth)
		if err != nil {
			return 0, err
		}
		if total, err = addLength(total, n); err != nil {
			return 0, fmt.Errorf("message %q at depth %d: %w", msg, depth, err)
		}
		prev = cur
	}

	return total, nil
}

// addLength returns a+b for non-negative counts, or ErrOverflow.
func addLength(a, b int64) (int64, error) {
	if b > math.MaxInt64-a {
		return 0, ErrOverflow
	}

	return a + b, nil
}

func (m *Minimizer) minLength(prev, cur keypad.Symbol, depth int) (int64, error) {
	if depth == 0 {
		return 1, nil
	}

	k := key{prev: prev, cur: cur, depth: depth}
	if v, ok := m.cache[k]; ok {
		m.stats.Hits++
		if v == overflowed {
			return 0, fmt.Errorf("%w: %s->%s at depth %d", ErrOverflow, prev, cur, depth)
		}
		return v, nil
	}
	m.stats.Misses++
	if m.opts.OnCompute != nil {
		m.opts.OnCompute(prev, cur, depth)
	}

	cands, err := m.src.Paths(prev, cur)
	if err != nil {
		return 0, fmt.Errorf("minlen %s->%s at depth %d: %w", prev, cur, depth, err)
	}
	if len(cands) == 0 {
		return 0, fmt.Errorf("%w: %s->%s", ErrNoCandidates, prev, cur)
	}

	// candidates past math.MaxInt64 are skipped; the pair overflows only if all do
	best := overflowed
	for _, c := range cands {
		n, err := m.messageLength(c+keypad.Confirm.String(), depth-1)
		if errors.Is(err, ErrOverflow) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if best == overflowed || n < best {
			best = n
		}
	}
	m.cache[k] = best
	if best == overflowed {
		return 0, fmt.Errorf("%w: %s->%s at depth %d", ErrOverflow, prev, cur, depth)
	}

	return best, nil
}
