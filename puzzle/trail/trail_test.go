package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/puzzle/trail"
)

const sample = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestParts(t *testing.T) {
	got, err := trail.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 36, got)

	got, err = trail.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 81, got)
}

// TestCount_Impassable uses a map where '.' cells split the climb.
//
//	...0...
//	...1...
//	...2...
//	6543456
//	7.....7
//	8.....8
//	9.....9
func TestCount_Impassable(t *testing.T) {
	heights, err := trail.Heights("...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9\n")
	require.NoError(t, err)

	v, ok := heights.Get(geometry.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, trail.Impassable, v)

	summits, trails := trail.Count(heights, geometry.Pt(3, 0))
	assert.Equal(t, 2, summits)
	assert.Equal(t, 2, trails)
}

// TestCount_Rating is the single-trailhead rating example with 13 trails.
func TestCount_Rating(t *testing.T) {
	heights, err := trail.Heights("..90..9\n...1.98\n...2..7\n6543456\n765.987\n876....\n987....\n")
	require.NoError(t, err)

	summits, trails := trail.Count(heights, geometry.Pt(3, 0))
	assert.Equal(t, 4, summits)
	assert.Equal(t, 13, trails)
}

func TestMalformed(t *testing.T) {
	_, err := trail.Part1("012\n3x5\n")
	assert.ErrorIs(t, err, trail.ErrMalformedInput)
	_, err = trail.Part2("01\n2\n")
	assert.ErrorIs(t, err, trail.ErrMalformedInput)
}
