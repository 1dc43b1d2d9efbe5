package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleRegions partitions a small garden into plots of equal plants and
// reports both region metrics.
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
// The C plot bends twice, so it has 8 sides while its perimeter is only 10.
func ExampleRegions() {
	g, _ := grid.Parse("AAAA\nBBCD\nBBCC\nEEEC\n")

	regions := grid.Regions(g)
	for _, r := range regions {
		plant, _ := g.Get(r[0].Point)
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", plant, r.Area(), r.Perimeter(), r.Sides())
	}
	fmt.Println("total perimeter score:", grid.TotalPerimeterScore(regions))
	fmt.Println("total side score:", grid.TotalSideScore(regions))

	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
	// total perimeter score: 140
	// total side score: 80
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindAll and GetWithIndex
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_FindAll maps a digit grid to ints and, for every 0, lists the
// neighbours holding a 1.
func ExampleGrid_FindAll() {
	g, _ := grid.Parse("010\n121\n010\n")
	heights := grid.Map(g, func(r rune) int { return int(r - '0') })

	for p := range heights.FindAll(func(h int) bool { return h == 0 }) {
		fmt.Print(p, ":")
		for _, d := range geometry.Directions {
			if q, h, ok := heights.GetWithIndex(p.Step(d)); ok && h == 1 {
				fmt.Print(" ", q)
			}
		}
		fmt.Println()
	}

	// Output:
	// (0,0): (1,0) (0,1)
	// (2,0): (2,1) (1,0)
	// (0,2): (0,1) (1,2)
	// (2,2): (2,1) (1,2)
}
