// Package antenna locates antinodes created by pairs of same-frequency
// antennas on a city map.
//
// For antennas a and b of one frequency, the line through them carries
// antinodes at b + k·(b−a) and a − k·(b−a). Without resonance only k = 1
// counts; with resonance every k ≥ 0 inside the map counts, which includes
// the antennas themselves.
package antenna

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

// ErrMalformedInput indicates the city map could not be parsed.
var ErrMalformedInput = errors.New("antenna: malformed input")

const empty = '.'

// City holds the map size and antenna positions grouped by frequency.
type City struct {
	size        geometry.Point
	frequencies []rune
	antennas    map[rune][]geometry.Point
}

// Parse reads a city map; every non-'.' cell is an antenna whose frequency
// is its character.
func Parse(input string) (*City, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	c := &City{size: g.Size(), antennas: make(map[rune][]geometry.Point)}
	for p, f := range g.FindAll(func(r rune) bool { return r != empty }) {
		if _, ok := c.antennas[f]; !ok {
			c.frequencies = append(c.frequencies, f)
		}
		c.antennas[f] = append(c.antennas[f], p)
	}

	return c, nil
}

// Antinodes returns the set of in-bounds antinode positions.
func (c *City) Antinodes(resonant bool) map[geometry.Point]struct{} {
	nodes := make(map[geometry.Point]struct{})
	for _, f := range c.frequencies {
		group := c.antennas[f]
		if len(group) < 2 {
			continue
		}
		for i, a := range group {
			if resonant {
				nodes[a] = struct{}{}
			}
			for _, b := range group[i+1:] {
				delta := b.Sub(a)
				c.project(nodes, b, delta, resonant)
				c.project(nodes, a, delta.Scale(-1), resonant)
			}
		}
	}

	return nodes
}

// project adds from+delta, from+2·delta, ... while in bounds, stopping after
// the first one unless resonant.
func (c *City) project(nodes map[geometry.Point]struct{}, from, delta geometry.Point, resonant bool) {
	for p := from.Add(delta); p.InBounds(c.size); p = p.Add(delta) {
		nodes[p] = struct{}{}
		if !resonant {
			return
		}
	}
}

func count(input string, resonant bool) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return len(c.Antinodes(resonant)), nil
}

// Part1 counts unique antinode positions without resonance.
func Part1(input string) (int, error) {
	return count(input, false)
}

// Part2 counts unique antinode positions with resonant harmonics.
func Part2(input string) (int, error) {
	return count(input, true)
}
