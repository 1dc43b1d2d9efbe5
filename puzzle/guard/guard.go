// Package guard simulates a lab guard's patrol.
//
// The guard starts on '^' facing North. Each move she steps forward; if the
// cell ahead is an obstacle ('#') she turns right instead, repeatedly, until
// the way is clear. The patrol ends when she steps off the map.
package guard

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

// ErrMalformedInput indicates the lab map could not be parsed.
var ErrMalformedInput = errors.New("guard: malformed input")

const (
	obstacle = '#'
	guardPos = '^'
)

// noObstacle is never inside a lab, so it can stand in for "no extra obstacle".
var noObstacle = geometry.Pt(-1, -1)

// Lab is a parsed lab map with the guard's starting position.
type Lab struct {
	grid  *grid.Grid[rune]
	start geometry.Point
}

// Parse reads a lab map. It must contain exactly one '^'.
func Parse(input string) (*Lab, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	lab := &Lab{grid: g, start: noObstacle}
	for p := range g.FindAll(func(r rune) bool { return r == guardPos }) {
		if lab.start != noObstacle {
			return nil, fmt.Errorf("%w: second guard at %v", ErrMalformedInput, p)
		}
		lab.start = p
	}
	if lab.start == noObstacle {
		return nil, fmt.Errorf("%w: no guard", ErrMalformedInput)
	}

	return lab, nil
}

// Start returns the guard's starting position.
func (l *Lab) Start() geometry.Point {
	return l.start
}

func (l *Lab) blocked(p, extra geometry.Point) bool {
	if p == extra {
		return true
	}
	r, ok := l.grid.Get(p)

	return ok && r == obstacle
}

// walk runs the patrol with an optional extra obstacle. visit is called for
// every position the guard occupies. The walk reports true
// when the guard leaves the map and false when she repeats a
// (position, heading) pair or is boxed in, i.e. patrols forever.
func (l *Lab) walk(extra geometry.Point, seen *geometry.VisitedSet, visit func(geometry.Point)) bool {
	seen.Reset()
	p, d := l.start, geometry.North
	for {
		if visit != nil {
			visit(p)
		}
		next := p.Step(d)
		for turns := 0; l.blocked(next, extra); turns++ {
			if turns == 3 {
				return false
			}
			d = d.TurnRight()
			next = p.Step(d)
		}
		if seen.Visited(p, d) {
			return false
		}
		seen.Visit(p, d)
		if !l.grid.InBounds(next) {
			return true
		}
		p = next
	}
}

// Path returns the distinct positions the guard visits, in first-visit order.
func (l *Lab) Path() []geometry.Point {
	var path []geometry.Point
	seen := geometry.NewVisitedSet(l.grid.Size())
	marked := make([]bool, l.grid.Width()*l.grid.Height())
	l.walk(noObstacle, seen, func(p geometry.Point) {
		if i := l.grid.Index(p); !marked[i] {
			marked[i] = true
			path = append(path, p)
		}
	})

	return path
}

// Loops reports whether adding an obstacle at p traps the guard in a loop.
func (l *Lab) Loops(p geometry.Point) bool {
	return !l.walk(p, geometry.NewVisitedSet(l.grid.Size()), nil)
}

// LoopPositions returns the cells on the guard's original path (except the
// start) where one new obstacle makes the patrol loop forever. Only those
// cells can change the route.
func (l *Lab) LoopPositions() []geometry.Point {
	var found []geometry.Point
	seen := geometry.NewVisitedSet(l.grid.Size())
	for _, p := range l.Path() {
		if p == l.start {
			continue
		}
		if !l.walk(p, seen, nil) {
			found = append(found, p)
		}
	}

	return found
}

// Part1 returns the number of distinct positions visited.
func Part1(input string) (int, error) {
	lab, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return len(lab.Path()), nil
}

// Part2 returns the number of obstacle positions that cause a loop.
func Part2(input string) (int, error) {
	lab, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return len(lab.LoopPositions()), nil
}
