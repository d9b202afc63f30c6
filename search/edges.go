package search

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2024/grid"
)

// CardinalSteps returns an EdgeFunc that moves one cell N, E, S or W for a
// fixed cost, regardless of facing. Cells for which blocked reports true are
// never entered.
func CardinalSteps[C constraints.Integer](blocked func(byte) bool, cost C) EdgeFunc[C] {
	return func(g grid.Grid, at grid.Point, _ grid.Direction) []Edge[C] {
		rays := grid.Rays(at, g.Corner(), 2)
		out := make([]Edge[C], 0, len(grid.Cardinals))
		for _, d := range grid.Cardinals {
			ray := rays[d]
			if len(ray) != 2 || blocked(g.At(ray[1])) {
				continue
			}
			out = append(out, Edge[C]{Cost: cost, To: ray[1], Dir: d})
		}

		return out
	}
}

// TurnPenalty returns an EdgeFunc for a walker that may step forward for
// step, or turn 90° either way and step for turn. Reversing in place is not
// offered. Edges come out in direction order (N, NE, E, ...).
func TurnPenalty[C constraints.Integer](blocked func(byte) bool, step, turn C) EdgeFunc[C] {
	return func(g grid.Grid, at grid.Point, facing grid.Direction) []Edge[C] {
		var out []Edge[C]
		for _, dr := range grid.RaysWithDirections(at, g.Corner(), 2) {
			if len(dr.Ray) != 2 || blocked(g.At(dr.Ray[1])) {
				continue
			}
			switch dr.Dir {
			case facing:
				out = append(out, Edge[C]{Cost: step, To: dr.Ray[1], Dir: dr.Dir})
			case facing.RotateLeft(), facing.RotateRight():
				out = append(out, Edge[C]{Cost: turn, To: dr.Ray[1], Dir: dr.Dir})
			}
		}

		return out
	}
}

// Wall returns a blocked predicate matching any of the given bytes.
func Wall(cells ...byte) func(byte) bool {
	return func(b byte) bool {
		for _, c := range cells {
			if b == c {
				return true
			}
		}
		return false
	}
}
