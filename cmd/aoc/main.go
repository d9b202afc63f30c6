// Command aoc runs one or all of the Advent of Code 2024 solvers and checks
// their answers against a YAML config.
//
//	aoc                     # latest day, config from ./aoc.yaml if present
//	aoc -day 16             # one day
//	aoc -day 18 -input x.txt
//	aoc -all -config ~/aoc/aoc.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2024/days/day04"
	"github.com/katalvlaran/aoc2024/days/day05"
	"github.com/katalvlaran/aoc2024/days/day06"
	"github.com/katalvlaran/aoc2024/days/day08"
	"github.com/katalvlaran/aoc2024/days/day10"
	"github.com/katalvlaran/aoc2024/days/day12"
	"github.com/katalvlaran/aoc2024/days/day16"
	"github.com/katalvlaran/aoc2024/days/day18"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const defaultConfig = "aoc.yaml"

func registry() puzzle.Registry {
	return puzzle.Registry{
		"day4":  day04.New,
		"day5":  day05.New,
		"day6":  day06.New,
		"day8":  day08.New,
		"day10": day10.New,
		"day12": day12.New,
		"day16": day16.New,
		"day18": day18.New,
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("aoc: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fl := flag.NewFlagSet("aoc", flag.ContinueOnError)
	var (
		day     = fl.String("day", "", "day to run, e.g. 16 or day16 (default latest)")
		input   = fl.String("input", "", "input file (default <inputs>/<day>.txt)")
		cfgPath = fl.String("config", defaultConfig, "YAML config with inputs dir and known answers")
		all     = fl.Bool("all", false, "run every registered day")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}
	if *all && (*day != "" || *input != "") {
		return errors.New("-all cannot be combined with -day or -input")
	}

	cfg, err := puzzle.LoadConfig(*cfgPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && *cfgPath == defaultConfig:
		cfg = puzzle.DefaultConfig()
	default:
		return err
	}

	reg := registry()
	if *all {
		return runAll(reg, cfg, out)
	}

	if *day == "" {
		*day, _ = reg.Latest()
	}
	name, ctor, err := reg.Lookup(*day)
	if err != nil {
		return err
	}
	path := *input
	if path == "" {
		path = cfg.InputPath(name)
	}
	rep, err := solve(name, ctor, path, cfg.Expected(name))
	printReport(out, rep)

	return err
}

// runAll solves every day concurrently and prints the reports in day order.
func runAll(reg puzzle.Registry, cfg puzzle.Config, out io.Writer) error {
	names := reg.Names()
	reports := make([]puzzle.Report, len(names))
	errs := make([]error, len(names))

	// A failing day does not cancel the others; Wait reports the first
	// failure and errs keeps all of them.
	var eg errgroup.Group
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			reports[i], errs[i] = solve(name, reg[name], cfg.InputPath(name), cfg.Expected(name))
			return errs[i]
		})
	}
	waitErr := eg.Wait()

	for _, rep := range reports {
		printReport(out, rep)
	}
	if waitErr == nil {
		return nil
	}

	return errors.Join(errs...)
}

func solve(name string, ctor puzzle.Constructor, path string, want puzzle.Answers) (puzzle.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Report{Day: name}, fmt.Errorf("%s: %w", name, err)
	}
	p, err := ctor(data)
	if err != nil {
		return puzzle.Report{Day: name}, fmt.Errorf("%s: %w", name, err)
	}

	return puzzle.Run(name, p, want)
}

func printReport(out io.Writer, rep puzzle.Report) {
	fmt.Fprintf(out, "%-6s part1=%s part2=%s\n", rep.Day, rep.Part1, rep.Part2)
}
