package geometry

// VisitedSet records, for every cell of a Width×Height area, which directions
// have been taken through that cell. It uses one byte per cell and the bits
// returned by Direction.BitMask.
//
// Points outside the area are never visited; Visit ignores them.
type VisitedSet struct {
	size  Point
	cells []uint8
}

// NewVisitedSet allocates an empty set covering size.X × size.Y cells.
// Non-positive sizes produce an empty set.
func NewVisitedSet(size Point) *VisitedSet {
	n := 0
	if size.X > 0 && size.Y > 0 {
		n = size.Area()
	}

	return &VisitedSet{size: size, cells: make([]uint8, n)}
}

// Visit marks direction d as taken at p.
func (s *VisitedSet) Visit(p Point, d Direction) {
	if !p.InBounds(s.size) {
		return
	}
	s.cells[p.Y*s.size.X+p.X] |= d.BitMask()
}

// Visited reports whether direction d was already taken at p.
func (s *VisitedSet) Visited(p Point, d Direction) bool {
	if !p.InBounds(s.size) {
		return false
	}

	return s.cells[p.Y*s.size.X+p.X]&d.BitMask() != 0
}

// Any reports whether any direction was taken at p.
func (s *VisitedSet) Any(p Point) bool {
	if !p.InBounds(s.size) {
		return false
	}

	return s.cells[p.Y*s.size.X+p.X] != 0
}

// Reset clears every cell so the set can be reused without reallocation.
func (s *VisitedSet) Reset() {
	clear(s.cells)
}
