package paths

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/keypress/keypad"
)

// Table maps every ordered key pair of a keypad to its shortest distance and
// to the complete set of minimal direction strings between the two keys.
//
// A Table is built once by Build and never mutated afterwards; lookups are
// safe for concurrent use.
type Table struct {
	keypad *keypad.Graph
	dist   map[Pair]int64
	paths  map[Pair][]string
}

// Build computes the shortest-path table of g.
//
// Implementation:
//   - Stage 1: from every key, run a tie-preserving Dijkstra that keeps all
//     predecessors achieving the minimal distance.
//   - Stage 2: for every target, walk the predecessor DAG backwards with a
//     depth-first enumeration, emitting one direction string per distinct
//     route. Strings are sorted for deterministic output.
//
// No tie-break is applied: equally short strings can cost differently once
// pressed through further keypads, so all of them are kept.
//
// Returns ErrNilKeypad for a nil graph, ErrOptionViolation for bad options
// and ErrTooManyPaths when WithMaxPaths is exceeded.
//
// Complexity: O(V·(V+E)·log V) for the searches plus the size of the output.
func Build(g *keypad.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilKeypad
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	t := &Table{
		keypad: g,
		dist:   make(map[Pair]int64, n*n),
		paths:  make(map[Pair][]string, n*n),
	}

	for src := 0; src < n; src++ {
		r := newRunner(g, src)
		r.run()
		for dst := 0; dst < n; dst++ {
			if !r.states[dst].visited {
				// connected keypads never get here; keypad.New rejects the rest
				continue
			}
			p := Pair{From: g.At(src), To: g.At(dst)}
			found, err := r.enumerate(dst, o.MaxPaths)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", err, p)
			}
			sort.Strings(found)
			t.dist[p] = r.states[dst].dist
			t.paths[p] = found
		}
	}

	return t, nil
}

// enumerate lists every shortest direction string from the runner's source
// to dst by walking predecessors backwards. The string for the source
// itself is empty.
func (r *runner) enumerate(dst, limit int) ([]string, error) {
	var (
		out    []string
		suffix []byte // directions collected so far, last move first
		walk   func(v int) error
	)
	walk = func(v int) error {
		if v == r.source {
			if limit > 0 && len(out) == limit {
				return ErrTooManyPaths
			}
			s := make([]byte, len(suffix))
			for i := range suffix {
				s[i] = suffix[len(suffix)-1-i]
			}
			out = append(out, string(s))
			return nil
		}
		for _, p := range r.states[v].prev {
			suffix = append(suffix, byte(p.dir))
			if err := walk(p.node); err != nil {
				return err
			}
			suffix = suffix[:len(suffix)-1]
		}
		return nil
	}

	if err := walk(dst); err != nil {
		return nil, err
	}

	return out, nil
}

// Keypad returns the graph the table was built from.
func (t *Table) Keypad() *keypad.Graph { return t.keypad }

// Len returns the number of pairs in the table.
func (t *Table) Len() int { return len(t.paths) }

// Paths returns every minimal direction string from one key to another.
// The result is a fresh slice; the empty string is the only path from a key
// to itself. Unknown pairs return ErrPairNotFound.
func (t *Table) Paths(from, to keypad.Symbol) ([]string, error) {
	p := Pair{From: from, To: to}
	found, ok := t.paths[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s keypad", ErrPairNotFound, p, t.keypad.Name())
	}
	out := make([]string, len(found))
	copy(out, found)

	return out, nil
}

// Distance returns the cost of the shortest move from one key to another.
// Unknown pairs return ErrPairNotFound.
func (t *Table) Distance(from, to keypad.Symbol) (int64, error) {
	p := Pair{From: from, To: to}
	d, ok := t.dist[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s on %s keypad", ErrPairNotFound, p, t.keypad.Name())
	}

	return d, nil
}

// Pairs returns every pair in the table, ordered by the keypad's key order
// of From, then of To.
func (t *Table) Pairs() []Pair {
	syms := t.keypad.Symbols()
	out := make([]Pair, 0, len(t.paths))
	for _, from := range syms {
		for _, to := range syms {
			p := Pair{From: from, To: to}
			if _, ok := t.paths[p]; ok {
				out = append(out, p)
			}
		}
	}

	return out
}
