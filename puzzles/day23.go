package puzzles

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/statespace/gridgraph"
)

// diffusion spreads elves over an unbounded plane until none of them moves.
type diffusion struct{ settings }

func (*diffusion) Day() int      { return 23 }
func (*diffusion) Title() string { return "Unstable Diffusion" }

// Indices into the Conn8 offset ring, clockwise from north.
const (
	north = iota
	northEast
	east
	southEast
	south
	southWest
	west
	northWest
)

// scan is one proposal rule: move one cell toward move if the three ring
// cells in look are all empty.
type scan struct {
	move int
	look [3]int
}

// scans are tried in this order, rotated by one each round.
var scans = [...]scan{
	{north, [3]int{northWest, north, northEast}},
	{south, [3]int{southEast, south, southWest}},
	{west, [3]int{southWest, west, northWest}},
	{east, [3]int{northEast, east, southEast}},
}

// grove is the set of elf positions plus the round counter.
type grove struct {
	elves map[gridgraph.Point]struct{}
	ring  []gridgraph.Point
	round int
}

func parseGrove(input string) (*grove, error) {
	decode := func(r rune) (int, error) {
		switch r {
		case '.':
			return 0, nil
		case '#':
			return 1, nil
		}
		return 0, fmt.Errorf("unexpected %q", r)
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	g, err := gridgraph.ParseGrid(lines(input), decode, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	found := g.FindAll(func(v int) bool { return v == 1 })
	if len(found) == 0 {
		return nil, malformed("grove has no elves")
	}
	gr := &grove{elves: make(map[gridgraph.Point]struct{}, len(found)), ring: g.Offsets()}
	for _, p := range found {
		gr.elves[p] = struct{}{}
	}
	return gr, nil
}

// step plays one round and returns the number of elves that moved.
func (g *grove) step() int {
	first := g.round % len(scans)
	g.round++

	plan := make(map[gridgraph.Point]gridgraph.Point, len(g.elves))
	claims := make(map[gridgraph.Point]int, len(g.elves))
	for e := range g.elves {
		var near [8]bool
		crowded := false
		for i, d := range g.ring {
			if _, ok := g.elves[e.Add(d)]; ok {
				near[i], crowded = true, true
			}
		}
		if !crowded {
			continue
		}
		for k := range scans {
			sc := scans[(first+k)%len(scans)]
			if near[sc.look[0]] || near[sc.look[1]] || near[sc.look[2]] {
				continue
			}
			to := e.Add(g.ring[sc.move])
			plan[e] = to
			claims[to]++
			break
		}
	}

	// targets were empty at the start of the round, so moves cannot collide
	moved := 0
	for from, to := range plan {
		if claims[to] != 1 {
			continue
		}
		delete(g.elves, from)
		g.elves[to] = struct{}{}
		moved++
	}
	return moved
}

// snapshot renders the smallest rectangle holding every elf as a grid
// (1 = elf, 0 = empty ground).
func (g *grove) snapshot() (*gridgraph.GridGraph, error) {
	var lo, hi gridgraph.Point
	first := true
	for e := range g.elves {
		if first {
			lo, hi, first = e, e, false
			continue
		}
		lo.X, lo.Y = min(lo.X, e.X), min(lo.Y, e.Y)
		hi.X, hi.Y = max(hi.X, e.X), max(hi.Y, e.Y)
	}
	cells := make([][]int, hi.Y-lo.Y+1)
	for y := range cells {
		cells[y] = make([]int, hi.X-lo.X+1)
	}
	for e := range g.elves {
		cells[e.Y-lo.Y][e.X-lo.X] = 1
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	return gridgraph.NewGridGraph(cells, opts)
}

// Part1 counts the empty ground tiles in the elves' bounding rectangle
// after ten rounds.
func (d *diffusion) Part1(input string) (string, error) {
	g, err := parseGrove(input)
	if err != nil {
		return "", err
	}
	for g.round < 10 {
		g.step()
	}
	snap, err := g.snapshot()
	if err != nil {
		return "", err
	}
	empty := len(snap.FindAll(func(v int) bool { return v == 0 }))
	if ce := d.log.Check(zap.DebugLevel, "grove after spreading"); ce != nil {
		ce.Write(
			zap.Int("rounds", g.round),
			zap.Int("elves", len(g.elves)),
			zap.Int("width", snap.Width),
			zap.Int("height", snap.Height),
			zap.Int("clusters", len(snap.ConnectedComponents())))
	}
	return strconv.Itoa(empty), nil
}

// Part2 reports the first round in which no elf moves. A search limit, when
// set, also caps the number of rounds.
func (d *diffusion) Part2(input string) (string, error) {
	g, err := parseGrove(input)
	if err != nil {
		return "", err
	}
	for {
		if d.limit > 0 && g.round >= d.limit {
			return "", fmt.Errorf("%w: elves still moving after %d rounds", ErrUnsolvable, g.round)
		}
		if g.step() == 0 {
			break
		}
	}
	d.log.Debug("grove settled", zap.Int("rounds", g.round), zap.Int("elves", len(g.elves)))
	return strconv.Itoa(g.round), nil
}
