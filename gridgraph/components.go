package gridgraph

import "github.com/katalvlaran/statespace/bfs"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell; cells
// within a component appear in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	land := func(p Point) bool { return gg.At(p) >= gg.LandThreshold }
	children := gg.ChildrenFunc(func(_, to Point) bool { return land(to) })

	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !land(p) || seen[y*gg.Width+x] {
				continue // water or already claimed
			}
			// Reachable only fails on nil children or bad options
			comp, _ := bfs.Reachable(p, children)
			for _, q := range comp {
				seen[q.Y*gg.Width+q.X] = true
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
