// Package puzzle maps Advent-style day numbers to the grid solvers built on
// the lvgrid engine.
//
// Every solver takes the raw puzzle input and returns a single integer
// answer. Lookup resolves a (day, part) pair; Days lists what is available.
package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvgrid/puzzle/antenna"
	"github.com/katalvlaran/lvgrid/puzzle/claw"
	"github.com/katalvlaran/lvgrid/puzzle/garden"
	"github.com/katalvlaran/lvgrid/puzzle/guard"
	"github.com/katalvlaran/lvgrid/puzzle/robot"
	"github.com/katalvlaran/lvgrid/puzzle/trail"
)

// Sentinel errors for registry lookups.
var (
	ErrUnknownDay  = errors.New("puzzle: no solver for day")
	ErrUnknownPart = errors.New("puzzle: part must be 1 or 2")
)

// Solver computes one answer from raw puzzle input.
type Solver func(input string) (int, error)

var solvers = map[int][2]Solver{
	6:  {guard.Part1, guard.Part2},
	8:  {antenna.Part1, antenna.Part2},
	10: {trail.Part1, trail.Part2},
	12: {garden.Part1, garden.Part2},
	13: {claw.Part1, claw.Part2},
	14: {
		func(in string) (int, error) { return robot.Part1(in) },
		func(in string) (int, error) { return robot.Part2(in) },
	},
}

// Lookup returns the solver for the given day and part (1 or 2).
func Lookup(day, part int) (Solver, error) {
	parts, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("Lookup: day %d: %w", day, ErrUnknownDay)
	}
	if part != 1 && part != 2 {
		return nil, fmt.Errorf("Lookup: day %d part %d: %w", day, part, ErrUnknownPart)
	}

	return parts[part-1], nil
}

// Days returns the days that have solvers, ascending.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}
