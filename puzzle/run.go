package puzzle

import (
	"errors"
	"fmt"
)

// Run solves both parts of p and compares them with want. Both parts are
// always attempted; a failing part does not hide the other's result.
// Mismatches wrap ErrWrongAnswer.
func Run(day string, p Problem, want Answers) (Report, error) {
	rep := Report{Day: day}
	var errs []error

	var err error
	if rep.Part1, err = p.Part1(); err != nil {
		errs = append(errs, fmt.Errorf("%s part 1: %w", day, err))
	} else if want.Part1 != "" && rep.Part1 != want.Part1 {
		errs = append(errs, fmt.Errorf("%w: %s part 1 got %s, want %s", ErrWrongAnswer, day, rep.Part1, want.Part1))
	}

	if rep.Part2, err = p.Part2(); err != nil {
		errs = append(errs, fmt.Errorf("%s part 2: %w", day, err))
	} else if want.Part2 != "" && rep.Part2 != want.Part2 {
		errs = append(errs, fmt.Errorf("%w: %s part 2 got %s, want %s", ErrWrongAnswer, day, rep.Part2, want.Part2))
	}

	return rep, errors.Join(errs...)
}
