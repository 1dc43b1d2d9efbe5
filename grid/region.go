package grid

import "github.com/katalvlaran/lvgrid/geometry"

// Area returns the number of cells in r.
func (r Region) Area() int {
	return len(r)
}

// Points returns the positions of r's cells in flood-fill order.
func (r Region) Points() []geometry.Point {
	pts := make([]geometry.Point, len(r))
	for i, c := range r {
		pts[i] = c.Point
	}

	return pts
}

// Perimeter counts the unit edges of r that face a non-member cell or the
// grid border: each cell contributes 4 minus its member neighbours.
// Complexity: O(A).
func (r Region) Perimeter() int {
	perimeter := 0
	for _, c := range r {
		perimeter += 4 - geometry.CountTrue(c.Neighbors)
	}

	return perimeter
}

// Sides counts the maximal straight runs of r's boundary.
//
// Each facing direction is handled on its own: the boundary set holds the
// cells whose neighbour in that direction is not a member. Every unvisited
// boundary cell starts a new side, which is then extended along
// facing.TurnRight() and back the other way for as long as consecutive cells
// stay in the boundary set. Holes and concave outlines need no special case
// because a cell may sit in up to all four boundary sets.
//
// Complexity: O(A) expected.
func (r Region) Sides() int {
	sides := 0
	for _, facing := range geometry.Directions {
		boundary := make(map[geometry.Point]bool)
		for _, c := range r {
			if !c.Neighbors.Get(facing) {
				boundary[c.Point] = false
			}
		}

		along := facing.TurnRight()
		// iterate r rather than the map so side discovery order is deterministic
		for _, c := range r {
			seen, ok := boundary[c.Point]
			if !ok || seen {
				continue
			}
			sides++
			boundary[c.Point] = true
			for q := c.Point.Step(along); isUnseen(boundary, q); q = q.Step(along) {
				boundary[q] = true
			}
			for q := c.Point.Back(along); isUnseen(boundary, q); q = q.Back(along) {
				boundary[q] = true
			}
		}
	}

	return sides
}

// PerimeterScore returns Area × Perimeter.
func (r Region) PerimeterScore() int {
	return r.Area() * r.Perimeter()
}

// SideScore returns Area × Sides.
func (r Region) SideScore() int {
	return r.Area() * r.Sides()
}

// TotalPerimeterScore sums PerimeterScore over regions.
func TotalPerimeterScore(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.PerimeterScore()
	}

	return total
}

// TotalSideScore sums SideScore over regions.
func TotalSideScore(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.SideScore()
	}

	return total
}

// isUnseen reports whether p is in the boundary set and not yet walked.
func isUnseen(boundary map[geometry.Point]bool, p geometry.Point) bool {
	seen, ok := boundary[p]

	return ok && !seen
}
