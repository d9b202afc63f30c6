package digraph

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AddVertex inserts v if absent.
//
// Complexity: O(1)
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertex(v)
}

func (g *Graph[V]) addVertex(v V) {
	if _, exists := g.adjacencyList[v]; !exists {
		g.adjacencyList[v] = make(map[V]struct{})
	}
}

// AddEdge inserts the edge from→to, adding missing endpoints.
// Adding an existing edge is a no-op.
//
// Complexity: O(1)
func (g *Graph[V]) AddEdge(from, to V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertex(from)
	g.addVertex(to)
	g.adjacencyList[from][to] = struct{}{}
}

// HasVertex reports whether v is in the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacencyList[v]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacencyList[from][to]
	return ok
}

// Successors returns the targets of v's outgoing edges in ascending order.
// Returns ErrVertexNotFound if v is absent.
//
// Complexity: O(d log d) where d is the out-degree of v.
func (g *Graph[V]) Successors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacencyList[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(nbrs), nil
}

// Vertices returns every vertex in ascending order.
//
// Complexity: O(V log V)
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adjacencyList)
}

// Len returns the number of vertices.
func (g *Graph[V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacencyList)
}

// Induced returns the subgraph on keep: those vertices of keep present in g
// and every edge of g between two of them. Values in keep that g lacks are
// added as isolated vertices.
//
// Complexity: O(K + E_K) where K = len(keep).
func (g *Graph[V]) Induced(keep []V) *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[V]struct{}, len(keep))
	for _, v := range keep {
		set[v] = struct{}{}
	}
	out := New[V]()
	for v := range set {
		out.addVertex(v)
		for to := range g.adjacencyList[v] {
			if _, ok := set[to]; ok {
				out.adjacencyList[v][to] = struct{}{}
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := New[V]()
	for v, nbrs := range g.adjacencyList {
		out.adjacencyList[v] = maps.Clone(nbrs)
	}

	return out
}

func sortedKeys[V constraints.Ordered, T any](m map[V]T) []V {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}
