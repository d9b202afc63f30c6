// Package day10 scores hiking trails on a topographic map: a trail climbs
// from height 0 to 9 one step at a time.
package day10

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// Map is a parsed day 10 input. Cells outside '0'..'9' are impassable.
type Map struct {
	g grid.Grid
}

// New parses the height map.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day10: %v", puzzle.ErrBadInput, err)
	}

	return &Map{g: g}, nil
}

// Trails walks every uphill trail from head and returns the number of
// distinct summits reached and the number of distinct trails.
func (m *Map) Trails(head grid.Point) (summits, trails int) {
	corner := m.g.Corner()
	reached := make(map[grid.Point]struct{})

	// Every distinct stack entry is a distinct partial trail.
	stack := []grid.Point{head}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h := m.g.At(p)
		if h == '9' {
			reached[p] = struct{}{}
			trails++
			continue
		}
		for _, d := range grid.Cardinals {
			next, ok := grid.Step(p, corner, d)
			if ok && m.g.At(next) == h+1 {
				stack = append(stack, next)
			}
		}
	}

	return len(reached), trails
}

func (m *Map) sum() (score, rating int) {
	for _, head := range grid.Find(m.g, '0') {
		s, r := m.Trails(head)
		score += s
		rating += r
	}

	return score, rating
}

// Part1 sums trailhead scores: summits reachable from each '0'.
func (m *Map) Part1() (string, error) {
	score, _ := m.sum()
	return strconv.Itoa(score), nil
}

// Part2 sums trailhead ratings: distinct trails from each '0'.
func (m *Map) Part2() (string, error) {
	_, rating := m.sum()
	return strconv.Itoa(rating), nil
}
