package geometry

import "fmt"

// Point is an integer 2D vector. It is a plain value type and is comparable,
// so it can be used directly as a map key.
type Point struct {
	X, Y int
}

// Pt is a short constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of p and q.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of p and q (truncated toward zero).
// A zero component in q panics, exactly like integer division.
func (p Point) Div(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Rem returns the component-wise remainder of p and q, with the sign of p.
func (p Point) Rem(q Point) Point {
	return Point{X: p.X % q.X, Y: p.Y % q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// DivScalar divides both components by k (truncated toward zero).
func (p Point) DivScalar(k int) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// Taxicab returns the Manhattan distance between p and q.
func (p Point) Taxicab(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Area treats p as a size and returns X*Y.
func (p Point) Area() int {
	return p.X * p.Y
}

// InBounds reports whether 0 <= X < size.X and 0 <= Y < size.Y.
// Complexity: O(1).
func (p Point) InBounds(size Point) bool {
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}

// Wrap folds p into [0,boundary.X) × [0,boundary.Y).
// After the remainder each component lies in (-b, b), so a single correction
// by +b is enough to make it non-negative.
func (p Point) Wrap(boundary Point) Point {
	r := p.Rem(boundary)
	if r.X < 0 {
		r.X += boundary.X
	}
	if r.Y < 0 {
		r.Y += boundary.Y
	}

	return r
}

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point {
	return p.Add(d.Offset())
}

// Back returns the neighbour of p opposite to direction d.
func (p Point) Back(d Direction) Point {
	return p.Sub(d.Offset())
}

// String implements fmt.Stringer as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
