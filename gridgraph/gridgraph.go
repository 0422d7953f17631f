package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/statespace/bfs"
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// ParseGrid builds a GridGraph from text rows, decoding each rune with cell.
// Decoder failures are wrapped in ErrBadCell with the row and column.
func ParseGrid(lines []string, cell func(r rune) (int, error), opts GridOptions) (*GridGraph, error) {
	values := make([][]int, 0, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d: %v", ErrBadCell, y, x, err)
			}
			row = append(row, v)
		}
		values = append(values, row)
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the value stored at p. p must be in bounds.
func (gg *GridGraph) At(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// Find returns the first cell, in row-major order, whose value satisfies pred.
func (gg *GridGraph) Find(pred func(v int) bool) (Point, bool) {
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if pred(gg.CellValues[y][x]) {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell, in row-major order, whose value satisfies pred.
func (gg *GridGraph) FindAll(pred func(v int) bool) []Point {
	var out []Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if pred(gg.CellValues[y][x]) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Offsets returns the neighbor offsets for the grid's connectivity.
func (gg *GridGraph) Offsets() []Point {
	return gg.offsets
}

// Neighbors returns the in-bounds cells adjacent to p that allow permits,
// in offset order.
func (gg *GridGraph) Neighbors(p Point, allow AllowFunc) []Point {
	out := make([]Point, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		q := p.Add(d)
		if !gg.InBounds(q) {
			continue
		}
		if allow != nil && !allow(p, q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ChildrenFunc adapts Neighbors to the bfs package.
func (gg *GridGraph) ChildrenFunc(allow AllowFunc) bfs.ChildrenFunc[Point] {
	return func(p Point) []Point {
		return gg.Neighbors(p, allow)
	}
}

// ShortestPath returns the fewest-move route from src to dst using moves
// permitted by allow. An unreachable dst yields Found == false.
// Returns ErrOutOfBounds if either endpoint lies outside the grid.
func (gg *GridGraph) ShortestPath(src, dst Point, allow AllowFunc, opts ...bfs.Option) (*bfs.PathResult[Point], error) {
	if !gg.InBounds(src) || !gg.InBounds(dst) {
		return nil, fmt.Errorf("%w: %v -> %v in %dx%d grid", ErrOutOfBounds, src, dst, gg.Width, gg.Height)
	}
	return bfs.ShortestPath(src, gg.ChildrenFunc(allow), func(p Point) bool { return p == dst }, opts...)
}
