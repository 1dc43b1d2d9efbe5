// Package garden prices fences around garden plots.
//
// A plot is a maximal 4-connected region of the same plant letter. The
// regular price of a plot is area × perimeter; the bulk price is
// area × number of straight sides.
package garden

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// ErrMalformedInput indicates the garden map could not be parsed.
var ErrMalformedInput = errors.New("garden: malformed input")

// Plots parses the garden map and returns its plots in row-major order of
// their first cell.
func Plots(input string) ([]grid.Region, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return grid.Regions(g), nil
}

// Part1 returns the total fence price using perimeters.
func Part1(input string) (int, error) {
	plots, err := Plots(input)
	if err != nil {
		return 0, err
	}

	return grid.TotalPerimeterScore(plots), nil
}

// Part2 returns the total fence price using the bulk discount (sides).
func Part2(input string) (int, error) {
	plots, err := Plots(input)
	if err != nil {
		return 0, err
	}

	return grid.TotalSideScore(plots), nil
}
