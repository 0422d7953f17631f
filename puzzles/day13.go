package puzzles

import (
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/statespace/packet"
)

// dividers are the two packets added for the decoder key.
var dividers = [2]packet.Value{
	packet.MustParse("[[2]]"),
	packet.MustParse("[[6]]"),
}

// distress orders pairs of nested packets.
type distress struct{ settings }

func (*distress) Day() int      { return 13 }
func (*distress) Title() string { return "Distress Signal" }

// Part1 sums the 1-based indices of pairs already in the right order.
func (d *distress) Part1(input string) (string, error) {
	pairs, err := packet.ParsePairs(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	sum, ordered := 0, 0
	for i, p := range pairs {
		if packet.Compare(p[0], p[1]) <= 0 {
			sum += i + 1
			ordered++
		}
	}
	d.log.Debug("compared packet pairs", zap.Int("pairs", len(pairs)), zap.Int("ordered", ordered))
	return strconv.Itoa(sum), nil
}

// Part2 sorts every packet together with the dividers and multiplies the
// dividers' 1-based positions.
func (d *distress) Part2(input string) (string, error) {
	vs, err := packet.ParseAll(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	type entry struct {
		v       packet.Value
		divider bool
	}
	entries := make([]entry, 0, len(vs)+len(dividers))
	for _, v := range vs {
		entries = append(entries, entry{v: v})
	}
	for _, v := range dividers {
		entries = append(entries, entry{v: v, divider: true})
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return packet.Compare(a.v, b.v) })

	key := 1
	for i, e := range entries {
		if e.divider {
			key *= i + 1
		}
	}
	d.log.Debug("sorted packets", zap.Int("packets", len(entries)), zap.Int("key", key))
	return strconv.Itoa(key), nil
}
