package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/puzzle/guard"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestParts(t *testing.T) {
	got, err := guard.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	got, err = guard.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestLoopPositions(t *testing.T) {
	lab, err := guard.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(4, 6), lab.Start())

	want := []geometry.Point{
		{X: 3, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7},
		{X: 1, Y: 8}, {X: 3, Y: 8}, {X: 7, Y: 9},
	}
	assert.ElementsMatch(t, want, lab.LoopPositions())
	assert.True(t, lab.Loops(geometry.Pt(3, 6)))
	assert.False(t, lab.Loops(geometry.Pt(4, 5)))
}

// TestPath_Boxed checks that a guard with no way out stops instead of spinning.
func TestPath_Boxed(t *testing.T) {
	lab, err := guard.Parse(".#.\n#^#\n.#.\n")
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 1, Y: 1}}, lab.Path())
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "...\n...\n", ".^.\n.^.\n", "..\n.\n"} {
		_, err := guard.Parse(in)
		assert.ErrorIs(t, err, guard.ErrMalformedInput, "input %q", in)
	}
}
