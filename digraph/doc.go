// Package digraph provides a minimal directed graph keyed directly by
// ordered values, with cycle detection and topological sorting.
//
// It is the adjacency-list half of the toolkit, used where puzzle input is a
// set of "a must come before b" rules rather than a grid.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge: O(1)
//   - Induced:                     O(K + E_K)
//   - TopologicalSort, HasCycle:   O((V + E) log d)
//
// Errors:
//
//   - ErrCycleDetected: TopologicalSort on a graph with a cycle.
//   - ErrVertexNotFound: Successors of a missing vertex.
package digraph
