package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/geometry"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := geometry.Pt(7, -3)
	q := geometry.Pt(2, 5)

	assert.Equal(t, geometry.Pt(9, 2), p.Add(q))
	assert.Equal(t, geometry.Pt(5, -8), p.Sub(q))
	assert.Equal(t, geometry.Pt(14, -15), p.Mul(q))
	assert.Equal(t, geometry.Pt(3, 0), p.Div(q))
	assert.Equal(t, geometry.Pt(1, -3), p.Rem(q))
	assert.Equal(t, geometry.Pt(21, -9), p.Scale(3))
	assert.Equal(t, geometry.Pt(3, -1), p.DivScalar(2))
	assert.Equal(t, -1, p.Dot(q))
	assert.Equal(t, 13, p.Taxicab(q))
	assert.Equal(t, 13, q.Taxicab(p))
	assert.Equal(t, 10, q.Area())
	assert.Equal(t, "(7,-3)", p.String())
}

func TestPoint_InBounds(t *testing.T) {
	size := geometry.Pt(3, 2)
	cases := []struct {
		p    geometry.Point
		want bool
	}{
		{geometry.Pt(0, 0), true},
		{geometry.Pt(2, 1), true},
		{geometry.Pt(1, 1), true},
		{geometry.Pt(-1, 0), false},
		{geometry.Pt(3, 0), false},
		{geometry.Pt(0, 2), false},
		{geometry.Pt(0, -1), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.InBounds(size), "InBounds(%v)", tc.p)
	}
}

// TestPoint_Wrap checks that wrapped points land inside the boundary and
// differ from the input by a whole multiple of the boundary.
func TestPoint_Wrap(t *testing.T) {
	boundaries := []geometry.Point{{X: 1, Y: 1}, {X: 11, Y: 7}, {X: 101, Y: 103}}
	for _, b := range boundaries {
		for x := -250; x <= 250; x += 7 {
			for y := -250; y <= 250; y += 11 {
				p := geometry.Pt(x, y)
				w := p.Wrap(b)
				require.True(t, w.InBounds(b), "%v.Wrap(%v) = %v", p, b, w)
				d := w.Sub(p)
				require.Zero(t, d.X%b.X, "x delta %d not a multiple of %d", d.X, b.X)
				require.Zero(t, d.Y%b.Y, "y delta %d not a multiple of %d", d.Y, b.Y)
			}
		}
	}
}

func TestPoint_StepBack(t *testing.T) {
	p := geometry.Pt(4, 4)
	for _, d := range geometry.Directions {
		assert.Equal(t, p, p.Step(d).Back(d))
		assert.Equal(t, 1, p.Taxicab(p.Step(d)))
		assert.Equal(t, p.Step(d.Opposite()), p.Back(d))
	}
	assert.Equal(t, geometry.Pt(4, 3), p.Step(geometry.North))
	assert.Equal(t, geometry.Pt(5, 4), p.Step(geometry.East))
}
