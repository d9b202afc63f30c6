// Package puzzle defines the contract every daily solver satisfies and the
// plumbing the command uses to find, configure and run them.
package puzzle

import "errors"

// Sentinel errors for lookup, configuration and checking.
var (
	// ErrUnknownDay indicates a name that is not in the registry.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrWrongAnswer indicates a part whose result differs from the configured answer.
	ErrWrongAnswer = errors.New("puzzle: wrong answer")

	// ErrBadInput indicates puzzle input that a solver could not parse.
	ErrBadInput = errors.New("puzzle: malformed input")
)

// Problem is one day's puzzle, already loaded with its input.
// Part1 and Part2 are independent and may be called in either order.
type Problem interface {
	Part1() (string, error)
	Part2() (string, error)
}

// Constructor parses raw puzzle input into a Problem.
type Constructor func(input []byte) (Problem, error)

// Answers holds the expected results of a day. Empty fields are not checked.
type Answers struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Report is the outcome of Run.
type Report struct {
	Day   string
	Part1 string
	Part2 string
}
