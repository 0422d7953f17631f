package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statespace/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a randomly
// generated 300×300 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 300
	rnd := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rnd.Intn(5)
		}
		grid[y] = row
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkShortestPath crosses an open 300×300 grid corner to corner.
func BenchmarkShortestPath(b *testing.B) {
	const n = 300
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	dst := gridgraph.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.ShortestPath(gridgraph.Point{}, dst, nil)
	}
}
