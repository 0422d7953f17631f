package puzzles

import (
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/gridgraph"
)

// Valley cell codes.
const (
	open = iota
	wall
	windRight
	windLeft
	windDown
	windUp
)

// blizzards crosses a valley whose winds move one cell per minute and wrap.
type blizzards struct{ settings }

func (*blizzards) Day() int      { return 24 }
func (*blizzards) Title() string { return "Blizzard Basin" }

// valley is the parsed map. Blizzard positions at any minute follow from
// their starting cells, so the initial grid is all that is stored.
type valley struct {
	grid        *gridgraph.GridGraph
	entry, exit gridgraph.Point
	inner       gridgraph.Point // interior width and height
	period      int
	moves       []gridgraph.Point
}

// expedition is a search state: where we stand at which minute.
type expedition struct {
	Pos gridgraph.Point
	T   int
}

func parseValley(input string) (*valley, error) {
	decode := func(r rune) (int, error) {
		switch r {
		case '.':
			return open, nil
		case '#':
			return wall, nil
		case '>':
			return windRight, nil
		case '<':
			return windLeft, nil
		case 'v':
			return windDown, nil
		case '^':
			return windUp, nil
		}
		return 0, fmt.Errorf("unexpected %q", r)
	}
	g, err := gridgraph.ParseGrid(lines(input), decode, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if g.Width < 3 || g.Height < 3 {
		return nil, malformed("valley of %dx%d has no interior", g.Width, g.Height)
	}

	gaps := g.FindAll(func(v int) bool { return v == open })
	v := &valley{grid: g, inner: gridgraph.Point{X: g.Width - 2, Y: g.Height - 2}}
	v.period = lcm(v.inner.X, v.inner.Y)
	v.moves = append(slices.Clone(g.Offsets()), gridgraph.Point{})
	var entries, exits int
	for _, p := range gaps {
		switch p.Y {
		case 0:
			v.entry = p
			entries++
		case g.Height - 1:
			v.exit = p
			exits++
		}
	}
	if entries != 1 || exits != 1 {
		return nil, malformed("valley needs one gap in the top and bottom walls, found %d and %d", entries, exits)
	}
	return v, nil
}

// interior reports whether p lies strictly inside the walls.
func (v *valley) interior(p gridgraph.Point) bool {
	return p.X >= 1 && p.X <= v.inner.X && p.Y >= 1 && p.Y <= v.inner.Y
}

// windAt reports whether any blizzard occupies interior cell p at minute t.
func (v *valley) windAt(p gridgraph.Point, t int) bool {
	x, y := p.X-1, p.Y-1
	w, h := v.inner.X, v.inner.Y
	cell := func(cx, cy int) int { return v.grid.At(gridgraph.Point{X: cx + 1, Y: cy + 1}) }
	return cell(mod(x-t, w), y) == windRight ||
		cell(mod(x+t, w), y) == windLeft ||
		cell(x, mod(y-t, h)) == windDown ||
		cell(x, mod(y+t, h)) == windUp
}

// children moves in each direction or waits, avoiding walls and wind.
func (v *valley) children(e expedition) []expedition {
	t := e.T + 1
	out := make([]expedition, 0, 5)
	for _, d := range v.moves {
		p := e.Pos.Add(d)
		switch {
		case p == v.entry || p == v.exit:
		case !v.interior(p) || v.windAt(p, t):
			continue
		}
		out = append(out, expedition{Pos: p, T: t})
	}
	return out
}

// key folds the minute into the wind period: states with equal keys face
// the same future.
func (v *valley) key(e expedition) expedition {
	return expedition{Pos: e.Pos, T: e.T % v.period}
}

// cross returns the earliest minute at which to is reached when leaving from
// at minute t.
func (b *blizzards) cross(v *valley, from, to gridgraph.Point, t int) (int, error) {
	res, err := bfs.ShortestPathKeyed(expedition{Pos: from, T: t}, v.key, v.children,
		func(e expedition) bool { return e.Pos == to }, b.searchOptions()...)
	if err != nil {
		return 0, err
	}
	b.log.Debug("crossed valley",
		zap.Any("from", from),
		zap.Any("to", to),
		zap.Int("start", t),
		zap.Int("explored", res.Explored),
		zap.Bool("found", res.Found))
	if !res.Found {
		return 0, fmt.Errorf("%w: %v cannot be reached from %v after minute %d", ErrUnsolvable, to, from, t)
	}
	return res.Path[len(res.Path)-1].T, nil
}

// Part1 reports the earliest minute the exit is reached from the entrance.
func (b *blizzards) Part1(input string) (string, error) {
	v, err := parseValley(input)
	if err != nil {
		return "", err
	}
	t, err := b.cross(v, v.entry, v.exit, 0)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(t), nil
}

// Part2 goes to the exit, back for the snacks, and to the exit again.
func (b *blizzards) Part2(input string) (string, error) {
	v, err := parseValley(input)
	if err != nil {
		return "", err
	}
	t := 0
	for _, leg := range [][2]gridgraph.Point{{v.entry, v.exit}, {v.exit, v.entry}, {v.entry, v.exit}} {
		if t, err = b.cross(v, leg[0], leg[1], t); err != nil {
			return "", err
		}
	}
	return strconv.Itoa(t), nil
}
