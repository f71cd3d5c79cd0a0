package thetastar_test

import (
	"testing"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/thetastar"
)

// BenchmarkSearch_OpenGrid measures Theta* on a large obstacle-free grid,
// the worst case for open-set growth since nothing prunes expansion early.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const n = 64
	g, err := occgrid.NewDense(n, n, func(x, y int) bool { return false })
	if err != nil {
		b.Fatal(err)
	}

	start := geom.Cell{X: 0, Y: 0}
	goal := geom.Cell{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = thetastar.Search(g, start, goal)
	}
}

// BenchmarkSearch_Maze measures Theta* on a grid with a single forced
// corridor, exercising repeated line-of-sight checks along the wall.
func BenchmarkSearch_Maze(b *testing.B) {
	const n = 64
	blocked := func(x, y int) bool { return x%8 == 4 && y != (x/8)%n }
	g, err := occgrid.NewDense(n, n, blocked)
	if err != nil {
		b.Fatal(err)
	}

	start := geom.Cell{X: 0, Y: 0}
	goal := geom.Cell{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = thetastar.Search(g, start, goal)
	}
}
