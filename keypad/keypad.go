package keypad

import (
	"fmt"
	"strings"
)

// none marks an empty slot in a node's outgoing edge array.
const none = -1

// node is one key with its outgoing moves indexed by direction.
type node struct {
	symbol Symbol
	next   [numDirections]int   // index of the neighbor, or none
	weight [numDirections]int64 // cost of the move, valid when next != none
}

// Graph is an immutable keypad graph.
//
// Keys are stored in a flat slice in order of first appearance in the
// construction facts; adjacency is expressed as indices into that slice.
// A Graph is safe for concurrent reads.
type Graph struct {
	name  string
	nodes []node
	index map[Symbol]int
}

// New builds a keypad graph from adjacency facts.
// Every fact inserts the declared move and its mirror.
//
// Validation (in order):
//  1. facts must be non-empty (ErrEmptyKeypad).
//  2. each direction must be valid (ErrBadDirection).
//  3. no fact may link a key to itself (ErrSelfLoop).
//  4. each weight must be positive (ErrBadWeight).
//  5. a key has at most one neighbor per direction, and mirrors agree (ErrConflictingEdge).
//  6. every key must be reachable from the first one (ErrDisconnected).
//
// Re-declaring an existing fact, or its mirror, is a no-op.
// Complexity: O(F + V) for F facts and V keys.
func New(name string, facts []Fact, opts ...Option) (*Graph, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyKeypad
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		name:  name,
		nodes: make([]node, 0, len(facts)),
		index: make(map[Symbol]int, len(facts)),
	}

	var f Fact
	for _, f = range facts {
		if !f.Dir.Valid() {
			return nil, fmt.Errorf("%w: %q in fact %s", ErrBadDirection, byte(f.Dir), f)
		}
		if f.From == f.To {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, f)
		}
		w := o.Weight(f)
		if w <= 0 {
			return nil, fmt.Errorf("%w: %d for fact %s", ErrBadWeight, w, f)
		}

		u, v := g.ensure(f.From), g.ensure(f.To)
		if err := g.link(u, f.Dir, v, w); err != nil {
			return nil, fmt.Errorf("%w (fact %s)", err, f)
		}
		if err := g.link(v, f.Dir.Opposite(), u, w); err != nil {
			return nil, fmt.Errorf("%w (mirror of fact %s)", err, f)
		}
	}

	if missing := g.unreachable(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q unreachable from %s", ErrDisconnected, symbolsString(missing), g.nodes[0].symbol)
	}

	return g, nil
}

// MustNew is like New but panics on error.
// It is meant for static layouts where a bad fact is a programming error.
func MustNew(name string, facts []Fact, opts ...Option) *Graph {
	g, err := New(name, facts, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// ensure returns the index of s, appending a fresh node if needed.
func (g *Graph) ensure(s Symbol) int {
	if i, ok := g.index[s]; ok {
		return i
	}
	n := node{symbol: s}
	for d := range n.next {
		n.next[d] = none
	}
	g.nodes = append(g.nodes, n)
	g.index[s] = len(g.nodes) - 1

	return len(g.nodes) - 1
}

// link records the move u --d--> v.
func (g *Graph) link(u int, d Direction, v int, w int64) error {
	slot := d.index()
	switch cur := g.nodes[u].next[slot]; {
	case cur == none:
		g.nodes[u].next[slot] = v
		g.nodes[u].weight[slot] = w
	case cur != v:
		return fmt.Errorf("%w: %s already moves %s to %s, not %s",
			ErrConflictingEdge, g.nodes[u].symbol, d, g.nodes[cur].symbol, g.nodes[v].symbol)
	case g.nodes[u].weight[slot] != w:
		return fmt.Errorf("%w: %s %s %s declared with weights %d and %d",
			ErrConflictingEdge, g.nodes[u].symbol, d, g.nodes[v].symbol, g.nodes[u].weight[slot], w)
	}

	return nil
}

// Name returns the name the keypad was built with.
func (g *Graph) Name() string { return g.name }

// Len returns the number of keys.
func (g *Graph) Len() int { return len(g.nodes) }

// Has reports whether s is a key on this keypad.
func (g *Graph) Has(s Symbol) bool {
	_, ok := g.index[s]
	return ok
}

// Index returns the position of s in Symbols, or -1 if s is not a key.
func (g *Graph) Index(s Symbol) int {
	if i, ok := g.index[s]; ok {
		return i
	}

	return none
}

// At returns the key stored at index i.
func (g *Graph) At(i int) Symbol { return g.nodes[i].symbol }

// Symbols returns all keys in order of first appearance.
func (g *Graph) Symbols() []Symbol {
	out := make([]Symbol, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].symbol
	}

	return out
}

// Neighbor returns the key reached by pressing d on s.
func (g *Graph) Neighbor(s Symbol, d Direction) (Symbol, bool) {
	i, ok := g.index[s]
	if !ok || !d.Valid() {
		return 0, false
	}
	j := g.nodes[i].next[d.index()]
	if j == none {
		return 0, false
	}

	return g.nodes[j].symbol, true
}

// Out returns the moves leaving the key at index i, in Directions order.
func (g *Graph) Out(i int) []Edge {
	n := &g.nodes[i]
	out := make([]Edge, 0, numDirections)
	for slot, j := range n.next {
		if j == none {
			continue
		}
		out = append(out, Edge{
			From:   n.symbol,
			To:     g.nodes[j].symbol,
			Dir:    Directions[slot],
			Weight: n.weight[slot],
		})
	}

	return out
}

// Edges returns every directed move, grouped by source key.
// Each physical adjacency appears twice, once per direction.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i := range g.nodes {
		out = append(out, g.Out(i)...)
	}

	return out
}

// String renders the keypad as its name followed by its keys.
func (g *Graph) String() string {
	return fmt.Sprintf("%s[%s]", g.name, symbolsString(g.Symbols()))
}

func symbolsString(ss []Symbol) string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteByte(byte(s))
	}

	return b.String()
}
