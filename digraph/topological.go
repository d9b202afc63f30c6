package digraph

// TopologicalSort orders all vertices so that every edge u→v has u before v.
// Roots are tried in ascending order and successors likewise, so the result
// is deterministic. Returns ErrCycleDetected if the graph is not a DAG.
//
// The depth-first walk keeps its own stack, so deep chains cannot exhaust
// the goroutine stack.
//
// Complexity:
//
//   - Time:   O((V + E) log d) (successor lists are sorted on entry)
//   - Memory: O(V)
func (g *Graph[V]) TopologicalSort() ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	order, err := g.postOrder()
	if err != nil {
		return nil, err
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// HasCycle reports whether the graph contains a directed cycle.
// Self-loops count as cycles.
func (g *Graph[V]) HasCycle() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.postOrder()
	return err != nil
}

// frame is one level of the explicit DFS stack.
type frame[V any] struct {
	v    V
	next []V // sorted successors
	i    int // index of the next successor to try
}

// postOrder runs White/Gray/Black DFS from every vertex and returns the
// vertices in post-order. Callers hold the read lock.
func (g *Graph[V]) postOrder() ([]V, error) {
	verts := sortedKeys(g.adjacencyList)
	state := make(map[V]int, len(verts))
	order := make([]V, 0, len(verts))

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack := []frame[V]{{v: root, next: sortedKeys(g.adjacencyList[root])}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i < len(top.next) {
				w := top.next[top.i]
				top.i++
				switch state[w] {
				case Gray:
					// back-edge
					return nil, ErrCycleDetected
				case White:
					state[w] = Gray
					stack = append(stack, frame[V]{v: w, next: sortedKeys(g.adjacencyList[w])})
				}
				continue
			}
			state[top.v] = Black
			order = append(order, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}
