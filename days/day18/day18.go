// Package day18 escapes a memory space that is being filled by falling
// bytes, moving one cell at a time from the top-left to the bottom-right.
package day18

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
	"github.com/katalvlaran/aoc2024/search"
)

// Puzzle dimensions for the real input.
const (
	DefaultSize   = 71
	DefaultFallen = 1024
)

const corrupted = '#'

// ErrNeverBlocked means every byte has fallen and the exit is still reachable.
var ErrNeverBlocked = errors.New("day18: exit never cut off")

// Memory is a parsed day 18 input: byte positions in fall order.
type Memory struct {
	size   int
	fallen int
	bytes  []grid.Point
}

// New parses input for the default 71×71 space with 1024 fallen bytes.
func New(input []byte) (puzzle.Problem, error) {
	return NewWithBounds(input, DefaultSize, DefaultFallen)
}

// NewWithBounds parses input for a size×size space where Part1 considers the
// first fallen bytes. Each line is "x,y" with x the column.
func NewWithBounds(input []byte, size, fallen int) (*Memory, error) {
	if size < 1 || fallen < 0 {
		return nil, fmt.Errorf("%w: day18: size=%d fallen=%d", puzzle.ErrBadInput, size, fallen)
	}
	m := &Memory{size: size, fallen: fallen}
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if !ok || errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: day18: line %d %q", puzzle.ErrBadInput, i+1, line)
		}
		p := grid.Point{Row: y, Col: x}
		if x < 0 || y < 0 || x >= size || y >= size {
			return nil, fmt.Errorf("%w: day18: line %d %v outside %dx%d", puzzle.ErrBadInput, i+1, p, size, size)
		}
		m.bytes = append(m.bytes, p)
	}

	return m, nil
}

// Steps returns the fewest moves to the exit after the first n bytes have
// fallen, and false if the exit is cut off.
func (m *Memory) Steps(n int) (int, bool, error) {
	if n > len(m.bytes) {
		n = len(m.bytes)
	}
	g := grid.New(m.size, m.size, '.')
	for _, p := range m.bytes[:n] {
		g.Set(p, corrupted)
	}
	start, exit := grid.Point{}, g.Corner()
	if g.At(start) == corrupted || g.At(exit) == corrupted {
		return 0, false, nil
	}

	return search.ShortestPath(g, start, exit, search.CardinalSteps(search.Wall(corrupted), 1))
}

// FirstBlocker returns the first byte whose fall cuts the exit off.
// Reachability only degrades as bytes fall, so a binary search over the
// prefix length finds it.
func (m *Memory) FirstBlocker() (grid.Point, bool, error) {
	var searchErr error
	n := sort.Search(len(m.bytes)+1, func(n int) bool {
		if searchErr != nil {
			return true
		}
		_, ok, err := m.Steps(n)
		if err != nil {
			searchErr = err
			return true
		}
		return !ok
	})
	if searchErr != nil {
		return grid.Point{}, false, searchErr
	}
	if n == 0 || n > len(m.bytes) {
		return grid.Point{}, false, nil
	}

	return m.bytes[n-1], true, nil
}

// Part1 returns the minimum number of steps to the exit.
func (m *Memory) Part1() (string, error) {
	steps, ok, err := m.Steps(m.fallen)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("day18: exit unreachable after %d bytes", m.fallen)
	}

	return strconv.Itoa(steps), nil
}

// Part2 returns the first blocking byte as "x,y".
func (m *Memory) Part2() (string, error) {
	p, ok, err := m.FirstBlocker()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNeverBlocked
	}

	return fmt.Sprintf("%d,%d", p.Col, p.Row), nil
}
