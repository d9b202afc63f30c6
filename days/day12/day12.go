// Package day12 prices garden fences: each region of equal plants is fenced
// and priced by area times perimeter, or by area times number of sides.
package day12

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// Garden is a parsed day 12 input.
type Garden struct {
	g       grid.Grid
	regions [][]grid.Point
}

// New parses the garden and splits it into regions.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day12: %v", puzzle.ErrBadInput, err)
	}

	return &Garden{g: g, regions: grid.Regions(g)}, nil
}

// same reports whether the neighbour of p in direction d holds the same plant.
func (gd *Garden) same(p grid.Point, d grid.Direction) bool {
	q, ok := grid.Step(p, gd.g.Corner(), d)
	return ok && gd.g.At(q) == gd.g.At(p)
}

// Perimeter counts fence segments around region.
func (gd *Garden) Perimeter(region []grid.Point) int {
	n := 0
	for _, p := range region {
		for _, d := range grid.Cardinals {
			if !gd.same(p, d) {
				n++
			}
		}
	}

	return n
}

// Sides counts straight fence runs around region. A polygon has as many
// sides as corners, so each cell contributes its convex and concave corners.
func (gd *Garden) Sides(region []grid.Point) int {
	n := 0
	for _, p := range region {
		for _, d := range grid.Cardinals {
			r := d.RotateRight()
			a, b := gd.same(p, d), gd.same(p, r)
			switch {
			case !a && !b:
				n++
			case a && b && !gd.same(p, d+1): // d+1 is the diagonal between d and r
				n++
			}
		}
	}

	return n
}

// Part1 prices every region by area times perimeter.
func (gd *Garden) Part1() (string, error) {
	total := 0
	for _, r := range gd.regions {
		total += len(r) * gd.Perimeter(r)
	}

	return strconv.Itoa(total), nil
}

// Part2 prices every region by area times number of sides.
func (gd *Garden) Part2() (string, error) {
	total := 0
	for _, r := range gd.regions {
		total += len(r) * gd.Sides(r)
	}

	return strconv.Itoa(total), nil
}
