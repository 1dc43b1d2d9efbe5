package geometry

import "iter"

// DirectionMap is a fixed record with exactly one slot per Direction.
// Slots are addressed by the Direction value itself, so Get and Set are O(1)
// and no slot can be added or removed.
type DirectionMap[T any] struct {
	slots [4]T
}

// NewDirectionMap returns a DirectionMap with every slot set to v.
func NewDirectionMap[T any](v T) DirectionMap[T] {
	return DirectionMap[T]{slots: [4]T{v, v, v, v}}
}

// Get returns the value stored for d.
func (m DirectionMap[T]) Get(d Direction) T {
	return m.slots[d&3]
}

// Set stores v for d.
func (m *DirectionMap[T]) Set(d Direction, v T) {
	m.slots[d&3] = v
}

// All yields (direction, value) pairs in the order North, East, South, West.
func (m DirectionMap[T]) All() iter.Seq2[Direction, T] {
	return func(yield func(Direction, T) bool) {
		for _, d := range Directions {
			if !yield(d, m.slots[d]) {
				return
			}
		}
	}
}

// Values yields the four values in the order North, East, South, West.
func (m DirectionMap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, d := range Directions {
			if !yield(m.slots[d]) {
				return
			}
		}
	}
}

// CountTrue returns how many slots of m are true.
func CountTrue(m DirectionMap[bool]) int {
	n := 0
	for v := range m.Values() {
		if v {
			n++
		}
	}

	return n
}
