// Package robot simulates security robots patrolling a wrapped rectangle.
//
// Each robot moves by its velocity once per second and teleports across the
// edges. Part1 scores the layout after a fixed time; Part2 looks for the
// second at which the robots line up into a picture, estimated as the layout
// with the fewest breaks along rows and columns.
package robot

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvgrid/geometry"
)

// ErrMalformedInput indicates a robot line could not be parsed.
var ErrMalformedInput = errors.New("robot: malformed input")

// Robot is one patrol robot.
type Robot struct {
	Pos geometry.Point
	Vel geometry.Point
}

// Parse reads one "p=x,y v=dx,dy" robot per line.
func Parse(input string) ([]Robot, error) {
	var robots []Robot
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r Robot
		if _, err := fmt.Sscanf(line, "p=%d,%d v=%d,%d", &r.Pos.X, &r.Pos.Y, &r.Vel.X, &r.Vel.Y); err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrMalformedInput, i+1, line, err)
		}
		robots = append(robots, r)
	}
	if len(robots) == 0 {
		return nil, fmt.Errorf("%w: no robots", ErrMalformedInput)
	}

	return robots, nil
}

// Move returns r's position after the given number of seconds in an area of
// the given size.
// Complexity: O(1).
func (r Robot) Move(seconds int, size geometry.Point) geometry.Point {
	return r.Pos.Add(r.Vel.Scale(seconds)).Wrap(size)
}

// Positions moves every robot by seconds.
func Positions(robots []Robot, seconds int, size geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(robots))
	for i, r := range robots {
		out[i] = r.Move(seconds, size)
	}

	return out
}

// SafetyFactor multiplies the robot counts of the four quadrants.
// Robots on the middle row or column (size/2) belong to no quadrant.
func SafetyFactor(positions []geometry.Point, size geometry.Point) int {
	mid := size.DivScalar(2)
	var quadrants [4]int
	for _, p := range positions {
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q |= 1
		}
		if p.Y > mid.Y {
			q |= 2
		}
		quadrants[q]++
	}

	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// Entropy estimates how scattered positions are. Robots are bucketed by
// column and by row; within each bucket the sorted coordinates are scanned
// and every value that does not directly follow its predecessor counts as a
// break. A tight picture produces long contiguous runs and few breaks.
// Complexity: O(n log n).
func Entropy(positions []geometry.Point) int {
	columns := make(map[int][]int)
	rows := make(map[int][]int)
	for _, p := range positions {
		columns[p.X] = append(columns[p.X], p.Y)
		rows[p.Y] = append(rows[p.Y], p.X)
	}

	sum := 0
	for _, bucket := range columns {
		sum += breaks(bucket)
	}
	for _, bucket := range rows {
		sum += breaks(bucket)
	}

	return sum
}

func breaks(bucket []int) int {
	slices.Sort(bucket)
	n := 0
	for i := 1; i < len(bucket); i++ {
		if bucket[i] != bucket[i-1]+1 {
			n++
		}
	}

	return n
}

// QuietestSecond returns the second in 1..lcm(width, height) with the lowest
// Entropy. The layout repeats with that period, so no later second can do
// better. Ties go to the earliest second.
func QuietestSecond(robots []Robot, size geometry.Point) int {
	period := lcm(size.X, size.Y)
	best, bestSecond := -1, 0
	for s := 1; s <= period; s++ {
		e := Entropy(Positions(robots, s, size))
		if best < 0 || e < best {
			best, bestSecond = e, s
		}
	}

	return bestSecond
}

// Part1 returns the safety factor after Options.Seconds.
func Part1(input string, opts ...Option) (int, error) {
	o := buildOptions(opts)
	robots, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return SafetyFactor(Positions(robots, o.Seconds, o.Size), o.Size), nil
}

// Part2 returns the second at which the robots are least scattered.
func Part2(input string, opts ...Option) (int, error) {
	o := buildOptions(opts)
	robots, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return QuietestSecond(robots, o.Size), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
