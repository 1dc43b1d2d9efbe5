package antenna_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/puzzle/antenna"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func TestParts(t *testing.T) {
	got, err := antenna.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 14, got)

	got, err = antenna.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 34, got)
}

func TestAntinodes_Pair(t *testing.T) {
	c, err := antenna.Parse("..........\n..........\n..........\n....a.....\n..........\n.....a....\n..........\n..........\n..........\n..........\n")
	require.NoError(t, err)

	nodes := c.Antinodes(false)
	assert.Len(t, nodes, 2)
	assert.Contains(t, nodes, geometry.Pt(3, 1))
	assert.Contains(t, nodes, geometry.Pt(6, 7))
}

// TestAntinodes_Resonant is the T-frequency example with 9 antinodes.
func TestAntinodes_Resonant(t *testing.T) {
	c, err := antenna.Parse("T.........\n...T......\n.T........\n..........\n..........\n..........\n..........\n..........\n..........\n..........\n")
	require.NoError(t, err)
	assert.Len(t, c.Antinodes(true), 9)
}

// TestAntinodes_Lonely checks that a frequency with one antenna adds nothing.
func TestAntinodes_Lonely(t *testing.T) {
	c, err := antenna.Parse("....\n.x..\n....\n")
	require.NoError(t, err)
	assert.Empty(t, c.Antinodes(false))
	assert.Empty(t, c.Antinodes(true))
}

func TestMalformed(t *testing.T) {
	_, err := antenna.Part1("...\n..\n")
	assert.ErrorIs(t, err, antenna.ErrMalformedInput)
}
