package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvgrid/geometry"
)

func TestDirectionMap_GetSet(t *testing.T) {
	m := geometry.NewDirectionMap(0)
	for _, d := range geometry.Directions {
		assert.Zero(t, m.Get(d))
	}
	m.Set(geometry.East, 2)
	m.Set(geometry.West, 8)
	assert.Equal(t, 0, m.Get(geometry.North))
	assert.Equal(t, 2, m.Get(geometry.East))
	assert.Equal(t, 0, m.Get(geometry.South))
	assert.Equal(t, 8, m.Get(geometry.West))
}

func TestDirectionMap_IterationOrder(t *testing.T) {
	m := geometry.NewDirectionMap("")
	m.Set(geometry.North, "n")
	m.Set(geometry.East, "e")
	m.Set(geometry.South, "s")
	m.Set(geometry.West, "w")

	var dirs []geometry.Direction
	var vals []string
	for d, v := range m.All() {
		dirs = append(dirs, d)
		vals = append(vals, v)
	}
	assert.Equal(t, geometry.Directions[:], dirs)
	assert.Equal(t, []string{"n", "e", "s", "w"}, vals)

	vals = vals[:0]
	for v := range m.Values() {
		vals = append(vals, v)
		if v == "e" {
			break
		}
	}
	assert.Equal(t, []string{"n", "e"}, vals)
}

func TestDirectionMap_CountTrue(t *testing.T) {
	m := geometry.NewDirectionMap(false)
	assert.Equal(t, 0, geometry.CountTrue(m))
	m.Set(geometry.South, true)
	m.Set(geometry.North, true)
	assert.Equal(t, 2, geometry.CountTrue(m))
	assert.Equal(t, 4, geometry.CountTrue(geometry.NewDirectionMap(true)))
}
