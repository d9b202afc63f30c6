// Package day06 follows a patrolling guard who walks straight and turns right
// at every obstacle, and finds where one extra obstacle would trap them in a
// loop.
package day06

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const obstacle = '#'

// ErrTrapped means the guard loops without any added obstruction.
var ErrTrapped = errors.New("day06: guard never leaves the map")

// Lab is a parsed day 6 input. The guard starts on '^' facing north.
type Lab struct {
	g     grid.Grid
	start grid.Point
}

// New parses the lab map.
func New(input []byte) (puzzle.Problem, error) {
	g, err := grid.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("%w: day06: %v", puzzle.ErrBadInput, err)
	}
	start, ok := grid.FindOne(g, '^')
	if !ok {
		return nil, fmt.Errorf("%w: day06: no guard", puzzle.ErrBadInput)
	}
	g.Set(start, '.')

	return &Lab{g: g, start: start}, nil
}

// Patrol returns every cell the guard occupies before leaving the map, in
// row-major order, and whether the guard is caught in a loop instead. If
// extra is non-nil that cell is treated as an obstacle too.
func (l *Lab) Patrol(extra *grid.Point) ([]grid.Point, bool) {
	cols := l.g.Cols()
	corner := l.g.Corner()
	// one bit per cardinal facing
	seen := make([]uint8, l.g.Rows()*cols)

	pos, dir := l.start, grid.N
	for {
		idx := pos.Row*cols + pos.Col
		bit := uint8(1) << (dir / 2)
		if seen[idx]&bit != 0 {
			return nil, true
		}
		seen[idx] |= bit

		next, ok := grid.Step(pos, corner, dir)
		if !ok {
			break
		}
		if l.g.At(next) == obstacle || (extra != nil && next == *extra) {
			dir = dir.RotateRight()
			continue
		}
		pos = next
	}

	var visited []grid.Point
	for idx, s := range seen {
		if s != 0 {
			visited = append(visited, grid.Point{Row: idx / cols, Col: idx % cols})
		}
	}

	return visited, false
}

// LoopObstructions counts the cells where a single new obstacle makes the
// guard loop. Only cells on the unobstructed route can matter and the start is
// excluded. Candidates are simulated in parallel.
func (l *Lab) LoopObstructions() (int, error) {
	route, loops := l.Patrol(nil)
	if loops {
		return 0, ErrTrapped
	}

	var (
		count atomic.Int64
		eg    errgroup.Group
	)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range route {
		if p == l.start {
			continue
		}
		p := p
		eg.Go(func() error {
			if _, loops := l.Patrol(&p); loops {
				count.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return int(count.Load()), nil
}

// Part1 counts distinct cells visited.
func (l *Lab) Part1() (string, error) {
	route, loops := l.Patrol(nil)
	if loops {
		return "", ErrTrapped
	}

	return strconv.Itoa(len(route)), nil
}

// Part2 counts loop-inducing obstruction cells.
func (l *Lab) Part2() (string, error) {
	n, err := l.LoopObstructions()
	if err != nil {
		return "", err
	}

	return strconv.Itoa(n), nil
}
