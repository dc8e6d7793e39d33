package complexity

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/minlen"
	"github.com/katalvlaran/keypress/paths"
	"github.com/katalvlaran/keypress/rewrite"
)

// Evaluator prices door codes typed through a stack of directional keypads
// onto a numeric keypad.
//
// One Evaluator keeps a single minimizer cache across all codes and depths it
// is asked about. It is not safe for concurrent use.
type Evaluator struct {
	numeric   rewrite.PathSource
	rewriter  *rewrite.Rewriter
	minimizer *minlen.Minimizer
	opts      Options
}

// New returns an Evaluator using numeric for the door keypad and directional
// for every keypad above it.
func New(numeric rewrite.PathSource, directional minlen.PathSource, opts ...Option) (*Evaluator, error) {
	if numeric == nil || directional == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rw, err := rewrite.New(numeric, rewrite.WithLimit(o.RewriteLimit))
	if err != nil {
		return nil, err
	}
	m, err := minlen.New(directional)
	if err != nil {
		return nil, err
	}

	return &Evaluator{numeric: numeric, rewriter: rw, minimizer: m, opts: o}, nil
}

// NewFromKeypads builds the shortest-path tables of both keypads and returns
// an Evaluator over them.
func NewFromKeypads(numeric, directional *keypad.Graph, opts ...Option) (*Evaluator, error) {
	nt, err := paths.Build(numeric)
	if err != nil {
		return nil, fmt.Errorf("numeric keypad: %w", err)
	}
	dt, err := paths.Build(directional)
	if err != nil {
		return nil, fmt.Errorf("directional keypad: %w", err)
	}

	return New(nt, dt, opts...)
}

// NewDefault returns an Evaluator over the standard numeric and directional
// keypads.
func NewDefault(opts ...Option) (*Evaluator, error) {
	return NewFromKeypads(keypad.Numeric(), keypad.Directional(), opts...)
}

// Strategy returns the strategy in use.
func (e *Evaluator) Strategy() Strategy { return e.opts.Strategy }

// Stats returns the minimizer cache counters.
func (e *Evaluator) Stats() minlen.Stats { return e.minimizer.Stats() }

// ShortestLength returns the fewest human presses that make the numeric
// robot type code, with depth directional keypads between the human and the
// numeric robot's controls.
//
// Depth 0 means the human presses the first directional layer directly, so
// the result is the length of the shortest first-layer rewrite. A negative
// depth is rejected with minlen.ErrNegativeDepth before any work, and a
// length past math.MaxInt64 fails with minlen.ErrOverflow.
func (e *Evaluator) ShortestLength(code string, depth int) (int64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", minlen.ErrNegativeDepth, depth)
	}
	if e.opts.Strategy == StrategyMinimize {
		return e.minimizeLength(code, depth)
	}

	return e.enumerateLength(code, depth)
}

// enumerateLength prices every complete first-layer rewrite.
func (e *Evaluator) enumerateLength(code string, depth int) (int64, error) {
	rewrites, err := e.rewriter.Rewrite(code)
	if err != nil {
		return 0, err
	}
	n, err := cheapest(e.minimizer, rewrites, "", depth)
	if err != nil {
		return 0, fmt.Errorf("code %q: %w", code, err)
	}

	return n, nil
}

// minimizeLength picks the cheapest route independently for each numeric
// key pair. The result equals enumerateLength because every segment ends
// with Confirm, resetting the layers above.
func (e *Evaluator) minimizeLength(code string, depth int) (int64, error) {
	var total int64
	prev := keypad.Confirm
	for i := 0; i < len(code); i++ {
		cur := keypad.Symbol(code[i])
		cands, err := e.numeric.Paths(prev, cur)
		if err != nil {
			return 0, fmt.Errorf("code %q at %d: %w", code, i, err)
		}
		if len(cands) == 0 {
			return 0, fmt.Errorf("%w: %s->%s", minlen.ErrNoCandidates, prev, cur)
		}
		best, err := cheapest(e.minimizer, cands, keypad.Confirm.String(), depth)
		if err != nil {
			return 0, fmt.Errorf("code %q at %d: %w", code, i, err)
		}
		if best > math.MaxInt64-total {
			return 0, fmt.Errorf("code %q at %d: %w", code, i, minlen.ErrOverflow)
		}
		total += best
		prev = cur
	}

	return total, nil
}

// cheapest returns the smallest MessageLength of msg+suffix over msgs.
// Messages past math.MaxInt64 are skipped; if none fits, ErrOverflow.
func cheapest(m *minlen.Minimizer, msgs []string, suffix string, depth int) (int64, error) {
	best, fits := int64(math.MaxInt64), false
	for _, msg := range msgs {
		n, err := m.MessageLength(msg+suffix, depth)
		if errors.Is(err, minlen.ErrOverflow) {
			continue
		}
		if err != nil {
			return 0, err
		}
		best, fits = min(best, n), true
	}
	if !fits {
		return 0, minlen.ErrOverflow
	}

	return best, nil
}

// Complexity returns ShortestLength(code, depth) * NumericValue(code).
func (e *Evaluator) Complexity(code string, depth int) (int64, error) {
	entry, err := e.entry(code, depth)
	if err != nil {
		return 0, err
	}

	return entry.Complexity, nil
}

// Evaluate prices every code and returns the per-code entries with their
// total. The first failing code aborts the evaluation.
func (e *Evaluator) Evaluate(codes []string, depth int) (Report, error) {
	rep := Report{Depth: depth, Entries: make([]Entry, 0, len(codes))}
	for _, code := range codes {
		entry, err := e.entry(code, depth)
		if err != nil {
			return Report{}, err
		}
		if entry.Complexity > math.MaxInt64-rep.Total {
			return Report{}, fmt.Errorf("total at %q: %w", code, minlen.ErrOverflow)
		}
		rep.Entries = append(rep.Entries, entry)
		rep.Total += entry.Complexity
	}

	return rep, nil
}

// Sum returns only the total of Evaluate.
func (e *Evaluator) Sum(codes []string, depth int) (int64, error) {
	rep, err := e.Evaluate(codes, depth)
	if err != nil {
		return 0, err
	}

	return rep.Total, nil
}

func (e *Evaluator) entry(code string, depth int) (Entry, error) {
	value, err := NumericValue(code)
	if err != nil {
		return Entry{}, err
	}
	n, err := e.ShortestLength(code, depth)
	if err != nil {
		return Entry{}, err
	}
	if value != 0 && n > math.MaxInt64/value {
		return Entry{}, fmt.Errorf("complexity of %q: %w", code, minlen.ErrOverflow)
	}

	return Entry{Code: code, Length: n, Value: value, Complexity: n * value}, nil
}

// NumericValue returns the number formed by the digits of code, ignoring
// every other key and leading zeros ("029A" -> 29).
func NumericValue(code string) (int64, error) {
	digits := make([]byte, 0, len(code))
	for i := 0; i < len(code); i++ {
		if c := code[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoNumericPart, code)
	}
	v, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("complexity: numeric part of %q: %w", code, err)
	}

	return v, nil
}
