package search

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc2024/grid"
)

// ShortestPath returns the minimal cost of reaching goal from start over the
// moves produced by edges, and whether goal is reachable at all.
//
// The search stops the first time goal leaves the queue: with non-negative
// costs that pop is already minimal. Relaxation is strict, so no state is
// queued twice at the same cost.
//
// Errors: ErrEmptyGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds,
// ErrNilEdgeFunc during validation; ErrNegativeCost or ErrEdgeOutOfBounds if
// edges breaks its contract. An unreachable goal is (0, false, nil).
//
// Complexity: O((V + E) log V) where V counts distance table keys.
func ShortestPath[C constraints.Integer](g grid.Grid, start, goal grid.Point, edges EdgeFunc[C], opts ...Option) (C, bool, error) {
	r, err := newRunner(g, start, goal, edges, false, opts)
	if err != nil {
		return 0, false, err
	}

	return r.first()
}

// AllShortestPaths is ShortestPath extended to report every grid point that
// lies on some minimal-cost path from start to goal.
//
// Differences from ShortestPath:
//
//   - A move whose cost ties the best known cost of its target is admitted
//     (≤ instead of <) and its origin is recorded as an extra predecessor.
//     A strictly cheaper move replaces the predecessor set.
//   - Reaching goal does not end the search. The queue keeps draining and any
//     entry costlier than the confirmed goal cost is discarded, so every
//     equal-cost arrival at goal is seen.
//   - Predecessor sets are walked back from all optimal goal states with an
//     explicit stack.
//
// Enable WithDirectionalStates when costs depend on the facing; otherwise
// two arrivals at one cell with different facings share a table entry.
func AllShortestPaths[C constraints.Integer](g grid.Grid, start, goal grid.Point, edges EdgeFunc[C], opts ...Option) (Result[C], bool, error) {
	r, err := newRunner(g, start, goal, edges, true, opts)
	if err != nil {
		return Result[C]{}, false, err
	}

	return r.all()
}

// runner holds the mutable state for a single search.
type runner[C constraints.Integer] struct {
	g       grid.Grid                    // read-only
	goal    grid.Point                   // target position, any facing
	edges   EdgeFunc[C]                  // caller supplied moves
	options Options                      // start facing, state keying
	dist    map[State]C                  // best known cost; a missing key is +∞
	prev    map[State]map[State]struct{} // predecessors on minimal relaxations; nil for ShortestPath
	pq      itemPQ[C]                    // lazy min-heap
}

func newRunner[C constraints.Integer](g grid.Grid, start, goal grid.Point, edges EdgeFunc[C], trackPrev bool, opts []Option) (*runner[C], error) {
	// 1) Build options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid, both endpoints and the edge function.
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if edges == nil {
		return nil, ErrNilEdgeFunc
	}

	// 3) Size the tables for one entry per cell; directional keys may grow
	//    them up to eight times that.
	r := &runner[C]{
		g:       g,
		goal:    goal,
		edges:   edges,
		options: cfg,
		dist:    make(map[State]C, g.Rows()*g.Cols()),
		pq:      make(itemPQ[C], 0, g.Rows()*g.Cols()),
	}
	if trackPrev {
		r.prev = make(map[State]map[State]struct{}, g.Rows()*g.Cols())
	}

	// 4) Seed the start state at cost zero.
	r.dist[r.key(start, cfg.StartDirection)] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, item[C]{cost: 0, pos: start, dir: cfg.StartDirection})

	return r, nil
}

// key folds the facing away unless directional states are enabled.
func (r *runner[C]) key(p grid.Point, d grid.Direction) State {
	if !r.options.Directional {
		return State{Pos: p}
	}
	return State{Pos: p, Dir: d}
}

// expand returns the edges leaving it, checked against the EdgeFunc contract.
func (r *runner[C]) expand(it item[C]) ([]Edge[C], error) {
	out := r.edges(r.g, it.pos, it.dir)
	for _, e := range out {
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, it.pos, e.To, e.Cost)
		}
		if !r.g.InBounds(e.To) {
			return nil, fmt.Errorf("%w: %v→%v", ErrEdgeOutOfBounds, it.pos, e.To)
		}
	}

	return out, nil
}

// first runs until goal is popped once.
func (r *runner[C]) first() (C, bool, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest queued state. Costs never decrease between pops,
		//    so the first goal pop carries the minimal cost.
		it := heap.Pop(&r.pq).(item[C])
		if it.pos == r.goal {
			return it.cost, true, nil
		}

		// 2) Stale entry: a cheaper route to this state was queued later.
		if it.cost > r.dist[r.key(it.pos, it.dir)] {
			continue
		}

		// 3) Ask the caller for the moves out of this state.
		next, err := r.expand(it)
		if err != nil {
			return 0, false, err
		}

		// 4) Strict relaxation: only a cheaper arrival is recorded and queued.
		for _, e := range next {
			nc := it.cost + e.Cost
			nk := r.key(e.To, e.Dir)
			if d, ok := r.dist[nk]; ok && nc >= d {
				continue
			}
			r.dist[nk] = nc
			heap.Push(&r.pq, item[C]{cost: nc, pos: e.To, dir: e.Dir})
		}
	}

	return 0, false, nil
}

// all drains the queue, recording predecessors, and traces the optimal set.
func (r *runner[C]) all() (Result[C], bool, error) {
	var (
		best  C
		found bool
		goals = make(map[State]struct{})
	)

	for r.pq.Len() > 0 {
		// 1) Pop the cheapest queued state.
		it := heap.Pop(&r.pq).(item[C])

		// 2) Prune: once a goal cost is confirmed nothing costlier can lie
		//    on an optimal path. The queue is drained, not abandoned, so
		//    equal-cost arrivals still surface.
		if found && it.cost > best {
			continue
		}

		// 3) Stale entry: the table already holds a cheaper cost for k.
		k := r.key(it.pos, it.dir)
		if it.cost > r.dist[k] {
			continue
		}

		// 4) Record the goal arrival. Pops are non-decreasing, so the first
		//    arrival fixes best and later ones can only tie it. The goal is
		//    still expanded: a route may pass through it facing another way.
		if it.pos == r.goal {
			if !found {
				best, found = it.cost, true
			}
			goals[k] = struct{}{}
		}

		// 5) Expand, checking the EdgeFunc contract.
		next, err := r.expand(it)
		if err != nil {
			return Result[C]{}, false, err
		}

		// 6) Relax each move.
		for _, e := range next {
			nc := it.cost + e.Cost
			nk := r.key(e.To, e.Dir)
			d, ok := r.dist[nk]
			switch {
			case !ok || nc < d:
				// 6a) Strictly better: this state is now the only predecessor.
				r.dist[nk] = nc
				r.prev[nk] = map[State]struct{}{k: {}}
				heap.Push(&r.pq, item[C]{cost: nc, pos: e.To, dir: e.Dir})
			case nc == d:
				// 6b) Tie: add k as another predecessor. Re-queue only when
				//     k is new, which bounds pushes by the number of edges.
				if _, dup := r.prev[nk][k]; dup {
					continue
				}
				if r.prev[nk] == nil {
					r.prev[nk] = make(map[State]struct{})
				}
				r.prev[nk][k] = struct{}{}
				heap.Push(&r.pq, item[C]{cost: nc, pos: e.To, dir: e.Dir})
			}
		}
	}

	// 7) Unreachable goal is not an error.
	if !found {
		return Result[C]{}, false, nil
	}

	// 8) Walk predecessors back from every optimal goal state.
	return Result[C]{Cost: best, Nodes: r.trace(goals)}, true, nil
}

// trace walks the predecessor sets back from the goal states and returns the
// distinct positions met, sorted.
func (r *runner[C]) trace(goals map[State]struct{}) []grid.Point {
	visited := make(map[State]struct{}, len(r.prev))
	positions := make(map[grid.Point]struct{})

	// Explicit stack; recursion depth would follow path length.
	stack := maps.Keys(goals)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		positions[s.Pos] = struct{}{}
		for p := range r.prev[s] {
			if _, ok := visited[p]; !ok {
				stack = append(stack, p)
			}
		}
	}

	nodes := maps.Keys(positions)
	slices.SortFunc(nodes, grid.Compare)

	return nodes
}

// item is a queued search state with its accumulated cost.
type item[C constraints.Integer] struct {
	cost C
	pos  grid.Point
	dir  grid.Direction
}

// itemPQ is a min-heap of item ordered by cost, then position, then facing.
// Stale entries are left in place and skipped on pop.
type itemPQ[C constraints.Integer] []item[C]

func (pq itemPQ[C]) Len() int { return len(pq) }

func (pq itemPQ[C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if c := grid.Compare(pq[i].pos, pq[j].pos); c != 0 {
		return c < 0
	}
	return pq[i].dir < pq[j].dir
}

func (pq itemPQ[C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ[C]) Push(x interface{}) { *pq = append(*pq, x.(item[C])) }

func (pq *itemPQ[C]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
