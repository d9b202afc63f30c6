// Package day04 searches a letter grid for XMAS in every direction and for
// pairs of MAS crossing on a shared A.
package day04

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// WordSearch is a parsed day 4 input.
type WordSearch struct {
	g grid.Grid
}

// New parses the letter grid.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day04: %v", puzzle.ErrBadInput, err)
	}

	return &WordSearch{g: g}, nil
}

// Count returns how many times word reads along a straight line in any of
// the eight directions. Overlapping occurrences all count.
func (w *WordSearch) Count(word string) int {
	if word == "" {
		return 0
	}
	corner := w.g.Corner()
	n := 0
	for _, p := range grid.Find(w.g, word[0]) {
		for _, ray := range grid.Rays(p, corner, len(word)) {
			if len(ray) == len(word) && grid.Extract(w.g, ray) == word {
				n++
			}
		}
	}

	return n
}

// Crosses counts cells where two diagonal occurrences of a three letter word
// share their middle letter.
func (w *WordSearch) Crosses(word string) int {
	if len(word) != 3 {
		return 0
	}
	corner := w.g.Corner()
	middles := make(map[grid.Point]int)
	for _, p := range grid.Find(w.g, word[0]) {
		for _, dr := range grid.RaysWithDirections(p, corner, 3) {
			if dr.Dir.IsCardinal() || len(dr.Ray) != 3 {
				continue
			}
			if grid.Extract(w.g, dr.Ray) == word {
				middles[dr.Ray[1]]++
			}
		}
	}

	n := 0
	for _, k := range middles {
		// every pair of diagonals through one middle forms an X
		n += k * (k - 1) / 2
	}

	return n
}

// Part1 counts XMAS.
func (w *WordSearch) Part1() (string, error) {
	return strconv.Itoa(w.Count("XMAS")), nil
}

// Part2 counts X-shaped MAS pairs.
func (w *WordSearch) Part2() (string, error) {
	return strconv.Itoa(w.Crosses("MAS")), nil
}
