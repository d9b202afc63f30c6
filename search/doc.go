// Package search implements priority-first (Dijkstra-style) search over
// rectangular byte grids, with states that may carry a facing direction.
//
// The graph is never materialised. The caller supplies an EdgeFunc that,
// given a position and a facing, lists the moves available from there; it is
// usually built from grid.RaysWithDirections with rays of length 2, filtered
// for walls and for the turns the puzzle allows. CardinalSteps and
// TurnPenalty build the two common shapes.
//
// Two entry points share one runner:
//
//   - ShortestPath stops at the first pop of the goal and returns its cost.
//   - AllShortestPaths keeps draining the queue until every state no
//     costlier than the goal has been seen, then reports the cost together
//     with every grid point on some minimal-cost path.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = distance table keys, E = edges returned.
//   - Space: O(V + E) for the distance table, predecessor sets and the lazy
//     heap (stale entries are skipped on pop, never removed).
//
// Options:
//
//   - WithStartDirection(d): facing at the start point (default grid.E).
//   - WithDirectionalStates(): key the distance table on (position, facing).
//
// Errors (sentinel):
//
//   - ErrEmptyGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrNilEdgeFunc
//     on invalid arguments.
//   - ErrNegativeCost, ErrEdgeOutOfBounds when the EdgeFunc breaks its
//     contract mid-search.
//
// An unreachable goal is reported through the boolean result, not an error.
//
// Each call owns its tables and heap, so concurrent searches over the same
// read-only grid need no coordination.
package search
