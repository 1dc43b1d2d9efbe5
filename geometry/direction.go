package geometry

// Direction is one of the four compass directions.
type Direction uint8

const (
	// North points toward decreasing Y.
	North Direction = iota
	// East points toward increasing X.
	East
	// South points toward increasing Y.
	South
	// West points toward decreasing X.
	West
)

// Directions lists every Direction in clockwise order starting at North.
// DirectionMap iteration and flood-fill neighbour probing follow this order.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the unit vector for d.
func (d Direction) Offset() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	}

	return Point{}
}

// TurnRight rotates d clockwise: North→East→South→West→North.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// TurnLeft rotates d counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// BitMask assigns each direction a distinct bit: North=1, East=2, South=4, West=8.
// The layout is fixed; VisitedSet stores these bits one byte per cell.
func (d Direction) BitMask() uint8 {
	switch d {
	case North:
		return 1
	case East:
		return 2
	case South:
		return 4
	case West:
		return 8
	}

	return 0
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return "Direction(?)"
}
