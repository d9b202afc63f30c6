// Package aoc2024 is a set of Advent of Code 2024 solvers built on a small
// grid toolkit.
//
// What lives where?
//
//	grid/     Point, Direction, Grid; bounded rays in eight directions,
//	          Find, Regions (4-connected same-byte components)
//	search/   Dijkstra over grid states: ShortestPath, AllShortestPaths
//	          (every tile on some optimal path), ready-made edge functions
//	digraph/  generic directed graph with cycle check and topological sort
//	puzzle/   Problem contract, Registry, YAML config, answer checking
//	days/     one package per solved day (4, 5, 6, 8, 10, 12, 16, 18)
//	cmd/aoc   command line runner
//
// Quick start:
//
//	go run ./cmd/aoc -day 16             # reads data/day16.txt
//	go run ./cmd/aoc -all -config aoc.yaml
//
// Every package below is safe for concurrent use as long as the grids handed
// to it are not mutated during a call.
package aoc2024
