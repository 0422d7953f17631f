package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/gridgraph"
)

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
//
//   - Grid values: 0 = water, 1,2,3 = land of different kinds
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - The 3 at (0,2) touches the 1 at (0,1), so only two islands remain.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, p := range comp {
			fmt.Printf(" (%d,%d)", p.X, p.Y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

// ExampleGridGraph_ShortestPath climbs a height map where each move may rise
// by at most one level.
func ExampleGridGraph_ShortestPath() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1, 2},
		{0, 5, 3},
		{0, 5, 4},
	}, gridgraph.DefaultGridOptions())

	climb := func(from, to gridgraph.Point) bool { return gg.At(to) <= gg.At(from)+1 }
	res, err := gg.ShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 1, Y: 1}, climb)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [{0 0} {1 0} {2 0} {2 1} {2 2} {1 2} {1 1}]
}
