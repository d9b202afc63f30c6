// Package puzzle is the glue between the command line and the daily solvers.
//
// What:
//
//   - Problem: the two-part contract every day implements.
//   - Registry: an explicit name → Constructor table, built once in main.
//   - Config: YAML file locating input files and known answers.
//   - Run: solves both parts and checks them against known answers.
//
// Errors:
//
//   - ErrUnknownDay: Registry.Lookup found no such day.
//   - ErrWrongAnswer: Run produced a result different from the configured one.
//   - ErrBadInput: a Constructor could not parse its input.
package puzzle
