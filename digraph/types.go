// Package digraph defines a small directed graph over ordered vertex values.
package digraph

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Vertex visitation states used by the depth-first routines.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates that TopologicalSort met a back-edge.
	ErrCycleDetected = errors.New("digraph: cycle detected")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// Graph is a directed graph without parallel edges. Vertices are plain
// ordered values (page numbers, names) so no ID indirection is needed.
//
// All methods are safe for concurrent use: mutations take the write lock,
// queries the read lock.
type Graph[V constraints.Ordered] struct {
	mu            sync.RWMutex
	adjacencyList map[V]map[V]struct{} // from → set of to
}

// New returns an empty graph.
func New[V constraints.Ordered]() *Graph[V] {
	return &Graph[V]{adjacencyList: make(map[V]map[V]struct{})}
}
