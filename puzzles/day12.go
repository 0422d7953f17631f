package puzzles

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/gridgraph"
)

// hillClimb walks a height map from S to E, rising at most one level per step.
type hillClimb struct{ settings }

func (*hillClimb) Day() int      { return 12 }
func (*hillClimb) Title() string { return "Hill Climbing Algorithm" }

// heightMap is a parsed day 12 input.
type heightMap struct {
	grid       *gridgraph.GridGraph
	start, end gridgraph.Point
}

func parseHeightMap(input string) (*heightMap, error) {
	rows := lines(input)
	hm := &heightMap{}
	var foundS, foundE bool
	for y, row := range rows {
		if x := strings.IndexByte(row, 'S'); x >= 0 {
			hm.start, foundS = gridgraph.Point{X: x, Y: y}, true
		}
		if x := strings.IndexByte(row, 'E'); x >= 0 {
			hm.end, foundE = gridgraph.Point{X: x, Y: y}, true
		}
	}
	if !foundS || !foundE {
		return nil, malformed("height map needs both 'S' and 'E'")
	}

	elevation := func(r rune) (int, error) {
		switch {
		case r == 'S':
			return 0, nil
		case r == 'E':
			return 'z' - 'a', nil
		case r >= 'a' && r <= 'z':
			return int(r - 'a'), nil
		default:
			return 0, fmt.Errorf("unexpected %q", r)
		}
	}
	g, err := gridgraph.ParseGrid(rows, elevation, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	hm.grid = g
	return hm, nil
}

// climb permits a step up of at most one level; any step down is allowed.
func (hm *heightMap) climb(from, to gridgraph.Point) bool {
	return hm.grid.At(to) <= hm.grid.At(from)+1
}

// descend is climb with the direction of travel reversed.
func (hm *heightMap) descend(from, to gridgraph.Point) bool {
	return hm.climb(to, from)
}

// Part1 is the fewest steps from S to E, climbing at most one level per step.
func (h *hillClimb) Part1(input string) (string, error) {
	hm, err := parseHeightMap(input)
	if err != nil {
		return "", err
	}
	res, err := hm.grid.ShortestPath(hm.start, hm.end, hm.climb, h.searchOptions()...)
	if err != nil {
		return "", err
	}
	h.log.Debug("hill climb from start",
		zap.Int("width", hm.grid.Width),
		zap.Int("height", hm.grid.Height),
		zap.Int("explored", res.Explored),
		zap.Bool("found", res.Found))
	steps, err := res.Steps()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsolvable, err)
	}
	return strconv.Itoa(steps), nil
}

// Part2 walks backwards from E and stops at the first lowest square dequeued.
func (h *hillClimb) Part2(input string) (string, error) {
	hm, err := parseHeightMap(input)
	if err != nil {
		return "", err
	}
	w, err := bfs.Walk(hm.end, hm.grid.ChildrenFunc(hm.descend), h.searchOptions()...)
	if err != nil {
		return "", err
	}
	n, ok := w.Find(func(p gridgraph.Point) bool { return hm.grid.At(p) == 0 })
	if err := w.Err(); err != nil {
		return "", err
	}
	h.log.Debug("hill descent from end", zap.Int("discovered", w.Discovered()), zap.Bool("found", ok))
	if !ok {
		return "", fmt.Errorf("%w: no lowest square can reach E", ErrUnsolvable)
	}
	return strconv.Itoa(n.Depth), nil
}
