package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

func randomGrid(b *testing.B, n, kinds int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := range rows {
		rows[y] = make([]int, n)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(kinds)
		}
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	return g
}

// BenchmarkRegions measures region discovery plus both metrics on a
// 500×500 grid with values in [0,4).
// Complexity: O(W×H)
func BenchmarkRegions(b *testing.B) {
	g := randomGrid(b, 500, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		regions := grid.Regions(g)
		_ = grid.TotalPerimeterScore(regions)
		_ = grid.TotalSideScore(regions)
	}
}

// BenchmarkFloodFill measures a single fill covering a 1000×1000 uniform grid.
func BenchmarkFloodFill(b *testing.B) {
	g, err := grid.New(geometry.Pt(1000, 1000), 1)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	member := func(v int) bool { return v == 1 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FloodFill(geometry.Pt(0, 0), member)
	}
}
