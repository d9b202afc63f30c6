// Package search defines the edge, state and option types for priority
// search over grids.
package search

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2024/grid"
)

// Sentinel errors returned by ShortestPath and AllShortestPaths.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("search: grid is empty")

	// ErrStartOutOfBounds indicates the start point lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start point outside grid")

	// ErrGoalOutOfBounds indicates the goal point lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal point outside grid")

	// ErrNilEdgeFunc indicates no edge function was supplied.
	ErrNilEdgeFunc = errors.New("search: edge function is nil")

	// ErrNegativeCost indicates the edge function produced a negative step cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrEdgeOutOfBounds indicates the edge function produced a target outside the grid.
	ErrEdgeOutOfBounds = errors.New("search: edge target outside grid")
)

// Edge is one move offered by an EdgeFunc: pay Cost to stand on To facing Dir.
type Edge[C constraints.Integer] struct {
	Cost C
	To   grid.Point
	Dir  grid.Direction
}

// EdgeFunc lists the moves available from at while facing the given
// direction. It must only return in-bounds targets and non-negative costs.
// It is called from a single goroutine and must not mutate g.
type EdgeFunc[C constraints.Integer] func(g grid.Grid, at grid.Point, facing grid.Direction) []Edge[C]

// State is the distance table key. Dir is always grid.N (the zero value)
// unless directional states are enabled.
type State struct {
	Pos grid.Point
	Dir grid.Direction
}

// Result is the outcome of AllShortestPaths.
type Result[C constraints.Integer] struct {
	// Cost is the minimal cost from start to goal.
	Cost C
	// Nodes holds every grid point lying on at least one minimal-cost path,
	// sorted with grid.Compare. Start and goal are included.
	Nodes []grid.Point
}

// Count returns the number of distinct points on minimal-cost paths.
func (r Result[C]) Count() int { return len(r.Nodes) }

// Options configures a search.
//
// StartDirection – facing at the start point. Default grid.E.
// Directional    – key the distance table on (position, direction) instead
//
//	of position alone. Required whenever edge costs depend on the facing.
type Options struct {
	StartDirection grid.Direction
	Directional    bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStartDirection sets the facing at the start point.
func WithStartDirection(d grid.Direction) Option {
	return func(o *Options) {
		o.StartDirection = d
	}
}

// WithDirectionalStates keys the distance table on (position, direction).
func WithDirectionalStates() Option {
	return func(o *Options) {
		o.Directional = true
	}
}

// DefaultOptions returns the defaults: facing east, position-only states.
func DefaultOptions() Options {
	return Options{
		StartDirection: grid.E,
		Directional:    false,
	}
}
