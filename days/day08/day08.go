// Package day08 places antinodes for pairs of same-frequency antennas: points
// in line with both antennas, one pair spacing beyond either end.
package day08

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const empty = '.'

// City is a parsed day 8 input. Every cell other than '.' is an antenna
// whose byte is its frequency.
type City struct {
	g        grid.Grid
	antennas map[byte][]grid.Point
}

// New parses the antenna map.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day08: %v", puzzle.ErrBadInput, err)
	}

	c := &City{g: g, antennas: make(map[byte][]grid.Point)}
	for _, row := range g {
		for _, b := range row {
			if b == empty {
				continue
			}
			if _, ok := c.antennas[b]; !ok {
				c.antennas[b] = grid.Find(g, b)
			}
		}
	}

	return c, nil
}

// Antinodes returns the distinct in-bounds antinode positions, sorted.
//
// For a pair a, b with spacing d = b - a the antinodes are a - d and b + d.
// With resonant set the whole line is covered instead: b + k·d and a - k·d
// for every k ≥ 0 that stays on the grid, which includes both antennas.
func (c *City) Antinodes(resonant bool) []grid.Point {
	seen := make(map[grid.Point]struct{})
	for _, pts := range c.antennas {
		for i, a := range pts {
			for _, b := range pts[i+1:] {
				dr, dc := b.Row-a.Row, b.Col-a.Col
				c.walk(seen, b, dr, dc, resonant)
				c.walk(seen, a, -dr, -dc, resonant)
			}
		}
	}

	out := make([]grid.Point, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.SortFunc(out, grid.Compare)

	return out
}

// walk steps from p by (dr, dc): once, or until it leaves the grid when
// resonant. A resonant walk also records p itself.
func (c *City) walk(seen map[grid.Point]struct{}, p grid.Point, dr, dc int, resonant bool) {
	if resonant {
		seen[p] = struct{}{}
	}
	for next := p.Add(dr, dc); c.g.InBounds(next); next = next.Add(dr, dc) {
		seen[next] = struct{}{}
		if !resonant {
			return
		}
	}
}

// Part1 counts antinodes one spacing beyond each pair.
func (c *City) Part1() (string, error) {
	return strconv.Itoa(len(c.Antinodes(false))), nil
}

// Part2 counts every grid point in line with some pair.
func (c *City) Part2() (string, error) {
	return strconv.Itoa(len(c.Antinodes(true))), nil
}
