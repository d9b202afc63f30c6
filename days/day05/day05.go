// Package day05 checks print queue updates against page ordering rules and
// repairs the ones that break them.
package day05

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/digraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// Queue is a parsed day 5 input: "a|b" rules, a blank line, then
// comma separated updates.
type Queue struct {
	rules   *digraph.Graph[int]
	updates [][]int
}

// New parses rules and updates.
func New(input []byte) (puzzle.Problem, error) {
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	head, tail, ok := strings.Cut(strings.TrimSpace(text), "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: day05: missing blank line between rules and updates", puzzle.ErrBadInput)
	}

	q := &Queue{rules: digraph.New[int]()}
	for i, line := range strings.Split(head, "\n") {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("%w: day05: rule %d %q", puzzle.ErrBadInput, i+1, line)
		}
		from, err1 := strconv.Atoi(a)
		to, err2 := strconv.Atoi(b)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: day05: rule %d %q", puzzle.ErrBadInput, i+1, line)
		}
		q.rules.AddEdge(from, to)
	}

	for i, line := range strings.Split(tail, "\n") {
		fields := strings.Split(line, ",")
		update := make([]int, len(fields))
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: day05: update %d %q", puzzle.ErrBadInput, i+1, line)
			}
			update[j] = n
		}
		q.updates = append(q.updates, update)
	}

	return q, nil
}

// InOrder reports whether update respects every rule between its pages.
// The update's own order is added as a chain of edges; any cycle with the
// applicable rules means some rule is violated.
func (q *Queue) InOrder(update []int) bool {
	g := q.rules.Induced(update)
	for i := 1; i < len(update); i++ {
		g.AddEdge(update[i-1], update[i])
	}

	return !g.HasCycle()
}

// Reorder returns the pages of update sorted by the applicable rules.
func (q *Queue) Reorder(update []int) ([]int, error) {
	order, err := q.rules.Induced(update).TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("day05: reorder %v: %w", update, err)
	}

	return order, nil
}

// Part1 sums the middle page of every update already in order.
func (q *Queue) Part1() (string, error) {
	sum := 0
	for _, u := range q.updates {
		if q.InOrder(u) {
			sum += u[len(u)/2]
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 reorders the remaining updates and sums their middle pages.
func (q *Queue) Part2() (string, error) {
	sum := 0
	for _, u := range q.updates {
		if q.InOrder(u) {
			continue
		}
		order, err := q.Reorder(u)
		if err != nil {
			return "", err
		}
		sum += order[len(order)/2]
	}

	return strconv.Itoa(sum), nil
}
