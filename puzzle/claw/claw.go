// Package claw finds the cheapest button presses that move a claw onto a
// prize.
//
// Each machine has two buttons that shift the claw by fixed vectors.
// Pressing A a times and B b times must land exactly on the prize, which is
// a 2×2 linear system; A costs 3 tokens and B costs 1.
package claw

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/matrix"
)

// ErrMalformedInput indicates a machine description could not be parsed.
var ErrMalformedInput = errors.New("claw: malformed input")

// Token costs per press.
const (
	CostA = 3
	CostB = 1
)

// FarOffset is added to both prize coordinates in Part2.
const FarOffset = 10_000_000_000_000

// Machine describes one claw machine.
type Machine struct {
	A, B  geometry.Point
	Prize geometry.Point
}

// Parse reads blank-line separated machine descriptions:
//
//	Button A: X+94, Y+34
//	Button B: X+22, Y+67
//	Prize: X=8400, Y=5400
func Parse(input string) ([]Machine, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	var machines []Machine
	for i, block := range strings.Split(strings.TrimSpace(input), "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) != 3 {
			return nil, fmt.Errorf("%w: machine %d has %d lines", ErrMalformedInput, i, len(lines))
		}
		var m Machine
		if _, err := fmt.Sscanf(lines[0], "Button A: X+%d, Y+%d", &m.A.X, &m.A.Y); err != nil {
			return nil, fmt.Errorf("%w: machine %d: %q: %v", ErrMalformedInput, i, lines[0], err)
		}
		if _, err := fmt.Sscanf(lines[1], "Button B: X+%d, Y+%d", &m.B.X, &m.B.Y); err != nil {
			return nil, fmt.Errorf("%w: machine %d: %q: %v", ErrMalformedInput, i, lines[1], err)
		}
		if _, err := fmt.Sscanf(lines[2], "Prize: X=%d, Y=%d", &m.Prize.X, &m.Prize.Y); err != nil {
			return nil, fmt.Errorf("%w: machine %d: %q: %v", ErrMalformedInput, i, lines[2], err)
		}
		machines = append(machines, m)
	}

	return machines, nil
}

// Presses solves a·A + b·B = Prize + (offset, offset) for whole,
// non-negative press counts. ok is false when no such solution exists.
func (m Machine) Presses(offset int) (a, b int, ok bool) {
	prize := m.Prize.Add(geometry.Pt(offset, offset))
	aug, err := matrix.NewDenseFrom([][]float64{
		{float64(m.A.X), float64(m.B.X), float64(prize.X)},
		{float64(m.A.Y), float64(m.B.Y), float64(prize.Y)},
	})
	if err != nil {
		return 0, 0, false
	}
	x, err := matrix.Solve(aug)
	if err != nil {
		return 0, 0, false
	}

	// The float solution is only a candidate; verify it in integers.
	a, b = int(math.Round(x[0])), int(math.Round(x[1]))
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	if m.A.Scale(a).Add(m.B.Scale(b)) != prize {
		return 0, 0, false
	}

	return a, b, true
}

// Cost returns the tokens needed to win the prize, or false if impossible.
func (m Machine) Cost(offset int) (int, bool) {
	a, b, ok := m.Presses(offset)
	if !ok {
		return 0, false
	}

	return a*CostA + b*CostB, true
}

func total(input string, offset int) (int, error) {
	machines, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, m := range machines {
		if c, ok := m.Cost(offset); ok {
			sum += c
		}
	}

	return sum, nil
}

// Part1 returns the fewest tokens needed to win every winnable prize.
func Part1(input string) (int, error) {
	return total(input, 0)
}

// Part2 is Part1 with every prize moved by FarOffset on both axes.
func Part2(input string) (int, error) {
	return total(input, FarOffset)
}
