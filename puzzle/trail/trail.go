// Package trail scores hiking trails on a topographic map.
//
// Heights are single digits; '.' marks impassable cells. A trail starts at a
// height-0 trailhead and climbs by exactly one per orthogonal step up to 9.
package trail

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

// ErrMalformedInput indicates the map could not be parsed.
var ErrMalformedInput = errors.New("trail: malformed input")

// Impassable is the height assigned to '.' cells.
const Impassable = -1

// Heights parses the map into a height grid.
func Heights(input string) (*grid.Grid[int], error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for p, r := range g.FindAll(func(r rune) bool { return r != '.' && (r < '0' || r > '9') }) {
		return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformedInput, r, p)
	}

	return grid.Map(g, func(r rune) int {
		if r == '.' {
			return Impassable
		}
		return int(r - '0')
	}), nil
}

// Count follows every uphill trail from start with an explicit stack and
// returns the number of distinct summits reached and the number of distinct
// trails.
func Count(heights *grid.Grid[int], start geometry.Point) (summits, trails int) {
	reached := make(map[geometry.Point]struct{})
	stack := []geometry.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h, ok := heights.Get(p)
		if !ok {
			continue
		}
		if h == 9 {
			reached[p] = struct{}{}
			trails++
			continue
		}
		for _, d := range geometry.Directions {
			if q, next, ok := heights.GetWithIndex(p.Step(d)); ok && next == h+1 {
				stack = append(stack, q)
			}
		}
	}

	return len(reached), trails
}

// solve sums a per-trailhead score over all trailheads.
func solve(input string, distinct bool) (int, error) {
	heights, err := Heights(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for p := range heights.FindAll(func(h int) bool { return h == 0 }) {
		summits, trails := Count(heights, p)
		if distinct {
			total += trails
		} else {
			total += summits
		}
	}

	return total, nil
}

// Part1 returns the sum of trailhead scores (distinct reachable summits).
func Part1(input string) (int, error) {
	return solve(input, false)
}

// Part2 returns the sum of trailhead ratings (distinct trails).
func Part2(input string) (int, error) {
	return solve(input, true)
}
