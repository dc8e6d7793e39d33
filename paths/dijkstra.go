package paths

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/keypress/keypad"
)

// predecessor is one edge that reaches a key at its minimal distance.
type predecessor struct {
	node int              // index of the key the edge leaves
	dir  keypad.Direction // direction pressed on that key
}

// keyState is the search state of a single key.
type keyState struct {
	dist    int64
	visited bool
	prev    []predecessor // every edge achieving dist, in relaxation order
}

// runner holds the mutable state of one single-source search.
//
// Unlike a textbook Dijkstra it never collapses ties: every relaxation that
// matches the current best distance adds a predecessor instead of being
// dropped, so the predecessor lists describe the full shortest-path DAG.
type runner struct {
	g      *keypad.Graph
	source int
	states []keyState
	pq     nodePQ
}

// newRunner prepares a search from the key at index source.
func newRunner(g *keypad.Graph, source int) *runner {
	r := &runner{
		g:      g,
		source: source,
		states: make([]keyState, g.Len()),
		pq:     make(nodePQ, 0, g.Len()),
	}
	for i := range r.states {
		r.states[i].dist = math.MaxInt64
	}
	r.states[source].dist = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// run settles every reachable key.
// Stale heap entries (lazy decrease-key) are skipped on pop.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.states[u].visited || item.dist > r.states[u].dist {
			continue
		}
		r.states[u].visited = true
		r.relax(u)
	}
}

// relax examines the moves leaving u.
//
//   - strictly shorter: reset the predecessor list and push a new heap entry
//   - equally short:    append u as an extra predecessor (tie kept)
//   - longer:           ignored
//
// Keys that are already settled are never touched; with positive weights
// their distance cannot be matched again, and skipping them keeps the
// predecessor relation acyclic.
func (r *runner) relax(u int) {
	du := r.states[u].dist
	for _, e := range r.g.Out(u) {
		v := r.g.Index(e.To)
		sv := &r.states[v]
		if sv.visited {
			continue
		}

		nd := du + e.Weight
		switch {
		case nd < sv.dist:
			sv.dist = nd
			sv.prev = append(sv.prev[:0], predecessor{node: u, dir: e.Dir})
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		case nd == sv.dist:
			sv.prev = append(sv.prev, predecessor{node: u, dir: e.Dir})
		}
	}
}

// nodeItem is a key index and its tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
