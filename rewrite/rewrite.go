package rewrite

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/keypress/keypad"
)

// Rewriter turns a message typed on one keypad into every minimal message
// that, typed on the directional keypad one layer up, produces it.
type Rewriter struct {
	src  PathSource
	opts Options
}

// New returns a Rewriter over src.
// It fails with ErrNilSource for a nil source and ErrOptionViolation for bad
// options.
func New(src PathSource, opts ...Option) (*Rewriter, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Rewriter{src: src, opts: o}, nil
}

// Rewrite returns every message obtained by replacing each consecutive pair
// of Confirm+msg with one of its shortest direction strings followed by an
// explicit Confirm press.
//
// The actuator rests on Confirm before the first key, hence the implicit
// leading Confirm. Results follow the order of the source's candidates,
// leftmost pair varying slowest.
//
// An empty message has exactly one rewrite: the empty message.
// Lookup failures are returned wrapped, with the offending message.
func (r *Rewriter) Rewrite(msg string) ([]string, error) {
	choices, err := r.choices(msg)
	if err != nil {
		return nil, err
	}

	total, err := count(choices)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, msg)
	}
	if r.opts.Limit > 0 && total > r.opts.Limit {
		return nil, fmt.Errorf("%w: %q exceeds %d", ErrTooManyRewrites, msg, r.opts.Limit)
	}

	out := []string{""}
	for _, c := range choices {
		next := make([]string, 0, len(out)*len(c))
		for _, prefix := range out {
			for _, seg := range c {
				next = append(next, prefix+seg)
			}
		}
		out = next
	}

	return out, nil
}

// Count returns how many rewrites msg has without building them.
// A count past math.MaxInt fails with ErrTooManyRewrites.
func (r *Rewriter) Count(msg string) (int, error) {
	choices, err := r.choices(msg)
	if err != nil {
		return 0, err
	}
	n, err := count(choices)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, msg)
	}

	return n, nil
}

// count multiplies the number of choices per pair, stopping at math.MaxInt.
func count(choices [][]string) (int, error) {
	n := 1
	for _, c := range choices {
		if len(c) == 0 {
			return 0, nil
		}
		if n > math.MaxInt/len(c) {
			return 0, ErrTooManyRewrites
		}
		n *= len(c)
	}

	return n, nil
}

// choices returns, per consecutive pair of Confirm+msg, the candidate
// segments (direction string plus Confirm).
func (r *Rewriter) choices(msg string) ([][]string, error) {
	out := make([][]string, 0, len(msg))
	prev := keypad.Confirm
	for i := 0; i < len(msg); i++ {
		cur := keypad.Symbol(msg[i])
		cands, err := r.src.Paths(prev, cur)
		if err != nil {
			return nil, fmt.Errorf("rewrite %q at %d: %w", msg, i, err)
		}
		segs := make([]string, len(cands))
		for j, c := range cands {
			var b strings.Builder
			b.Grow(len(c) + 1)
			b.WriteString(c)
			b.WriteByte(byte(keypad.Confirm))
			segs[j] = b.String()
		}
		out = append(out, segs)
		prev = cur
	}

	return out, nil
}
