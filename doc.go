// Package lvgrid is an in-memory toolkit for rectangular character grids:
// parsing, typed cell access, flood-fill region discovery and region
// metrics, plus the puzzle solvers and terminal viewer built on top of them.
//
// What is in the box:
//
//	geometry/ Point, Direction, DirectionMap and a packed VisitedSet
//	grid/     Grid[T] (row-major, generic), Parse, Map, FindAll, FloodFill,
//	          Regions, Label; Region area, perimeter and side counts
//	matrix/   a dense float64 matrix and a Gaussian elimination solver
//	puzzle/   grid puzzle solvers (garden, trail, guard, antenna, claw,
//	          robot) and a day/part registry
//	viewer/   tcell rendering of labelled regions
//	cmd/      the lvgrid command line
//
// Quick example:
//
//	AAAA
//	BBCD      five regions; A has area 4 and perimeter 10,
//	BBCC      C has area 4 and 8 sides.
//	EEEC
//
// All lookups return (value, ok) instead of panicking, and every
// constructor reports malformed input through a package sentinel error.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
