// Package day16 scores a reindeer race through a maze: stepping forward costs
// 1 and turning 90° before a step costs 1001.
package day16

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
	"github.com/katalvlaran/aoc2024/search"
)

const (
	stepCost = 1
	turnCost = 1000 + stepCost
)

// Maze is a parsed day 16 input.
type Maze struct {
	g          grid.Grid
	start, end grid.Point
}

// New parses a maze with exactly one 'S' and one 'E'.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day16: %v", puzzle.ErrBadInput, err)
	}
	start, ok := grid.FindOne(g, 'S')
	if !ok {
		return nil, fmt.Errorf("%w: day16: no start tile", puzzle.ErrBadInput)
	}
	end, ok := grid.FindOne(g, 'E')
	if !ok {
		return nil, fmt.Errorf("%w: day16: no end tile", puzzle.ErrBadInput)
	}

	return &Maze{g: g, start: start, end: end}, nil
}

func (m *Maze) edges() search.EdgeFunc[int] {
	return search.TurnPenalty(search.Wall('#'), stepCost, turnCost)
}

// Part1 returns the lowest score from S (facing east) to E.
func (m *Maze) Part1() (string, error) {
	cost, ok, err := search.ShortestPath(m.g, m.start, m.end, m.edges(),
		search.WithStartDirection(grid.E), search.WithDirectionalStates())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("day16: end %v unreachable", m.end)
	}

	return strconv.Itoa(cost), nil
}

// Part2 counts tiles that lie on at least one lowest-score path.
func (m *Maze) Part2() (string, error) {
	res, ok, err := search.AllShortestPaths(m.g, m.start, m.end, m.edges(),
		search.WithStartDirection(grid.E), search.WithDirectionalStates())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("day16: end %v unreachable", m.end)
	}

	return strconv.Itoa(res.Count()), nil
}
