package grid

import "github.com/katalvlaran/lvgrid/geometry"

// FloodFill collects the 4-connected region containing start whose cells
// satisfy member.
//
// Behavior:
//  1. If start is out of bounds or fails member, the region is empty.
//  2. Points are popped from an explicit stack; out-of-bounds or already
//     visited points are skipped.
//  3. For each remaining point all four neighbours are tested against member
//     (out-of-bounds neighbours fail). The outcome is stored in the cell's
//     Neighbors map and passing neighbours are pushed.
//  4. The point is marked visited and appended to the result.
//
// Neighbors flags depend only on member, not on visitation order, so the
// same cell gets identical flags from any seed in its region.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags, local to the call.
func (g *Grid[T]) FloodFill(start geometry.Point, member func(T) bool) Region {
	return g.fill(start, member, make([]bool, len(g.cells)))
}

// fill is FloodFill over a caller-provided visited buffer of len(g.cells).
func (g *Grid[T]) fill(start geometry.Point, member func(T) bool, visited []bool) Region {
	if v, ok := g.Get(start); !ok || !member(v) {
		return nil
	}

	var region Region
	stack := []geometry.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.InBounds(p) || visited[g.index(p)] {
			continue
		}

		neighbors := geometry.NewDirectionMap(false)
		for _, d := range geometry.Directions {
			q := p.Step(d)
			if v, ok := g.Get(q); ok && member(v) {
				neighbors.Set(d, true)
				if !visited[g.index(q)] {
					stack = append(stack, q)
				}
			}
		}
		visited[g.index(p)] = true
		region = append(region, Cell{Point: p, Neighbors: neighbors})
	}

	return region
}

// Regions partitions g into maximal 4-connected regions of equal cells.
// Cells are scanned in row-major order; every unclaimed cell seeds a flood
// fill with "equal to this cell" as the predicate, and the cells it returns
// are claimed. Every cell ends up in exactly one region, and regions are
// returned in the order their first cell appears.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for claimed flags and output.
func Regions[T comparable](g *Grid[T]) []Region {
	// Claimed cells belong to other components, so they can never be reached
	// from a new seed; the claimed flags serve as the visited set.
	claimed := make([]bool, len(g.cells))
	var regions []Region
	for i, v := range g.cells {
		if claimed[i] {
			continue
		}
		want := v
		r := g.fill(g.Coordinate(i), func(c T) bool { return c == want }, claimed)
		regions = append(regions, r)
	}

	return regions
}

// Label assigns every cell the 0-based ID of its region (in the order
// returned by Regions) and reports the number of regions.
func Label[T comparable](g *Grid[T]) (*Grid[int], int) {
	regions := Regions(g)
	ids := make([]int, len(g.cells))
	for id, r := range regions {
		for _, c := range r {
			ids[g.index(c.Point)] = id
		}
	}

	return &Grid[int]{size: g.size, cells: ids}, len(regions)
}
