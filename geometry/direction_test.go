package geometry_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvgrid/geometry"
)

func TestDirection_Offsets(t *testing.T) {
	want := map[geometry.Direction]geometry.Point{
		geometry.North: {X: 0, Y: -1},
		geometry.East:  {X: 1, Y: 0},
		geometry.South: {X: 0, Y: 1},
		geometry.West:  {X: -1, Y: 0},
	}
	for d, off := range want {
		assert.Equal(t, off, d.Offset(), d.String())
	}
}

func TestDirection_TurnRightCycle(t *testing.T) {
	assert.Equal(t, geometry.East, geometry.North.TurnRight())
	assert.Equal(t, geometry.South, geometry.East.TurnRight())
	assert.Equal(t, geometry.West, geometry.South.TurnRight())
	assert.Equal(t, geometry.North, geometry.West.TurnRight())

	for _, d := range geometry.Directions {
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight())
		assert.Equal(t, d, d.TurnRight().TurnLeft())
		assert.Equal(t, d.Opposite(), d.TurnRight().TurnRight())
		// a right turn is a clockwise quarter rotation of the offset: (x,y) -> (-y,x)
		o := d.Offset()
		assert.Equal(t, geometry.Pt(-o.Y, o.X), d.TurnRight().Offset())
	}
}

func TestDirection_BitMask(t *testing.T) {
	want := []uint8{1, 2, 4, 8}
	var seen uint8
	for i, d := range geometry.Directions {
		m := d.BitMask()
		assert.Equal(t, want[i], m)
		assert.Equal(t, 1, bits.OnesCount8(m), "%s mask must be a power of two", d)
		assert.Zero(t, seen&m, "%s mask overlaps", d)
		seen |= m
	}
	assert.Equal(t, uint8(0x0f), seen)
}
