package keypad

// unreachable runs a breadth-first walk from the first key and returns the
// keys it never reached, in index order.
// Complexity: O(V + E).
func (g *Graph) unreachable() []Symbol {
	visited := make([]bool, len(g.nodes))
	queue := make([]int, 0, len(g.nodes))

	visited[0] = true
	queue = append(queue, 0)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.nodes[u].next {
			if v == none || visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	var missing []Symbol
	for i, ok := range visited {
		if !ok {
			missing = append(missing, g.nodes[i].symbol)
		}
	}

	return missing
}
