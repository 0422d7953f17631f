package puzzles

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// calories sums blank-line separated groups of integers.
type calories struct{ settings }

func (*calories) Day() int      { return 1 }
func (*calories) Title() string { return "Calorie Counting" }

// Part1 reports the largest group total.
func (c *calories) Part1(input string) (string, error) {
	totals, err := c.totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(slices.Max(totals)), nil
}

// Part2 reports the sum of the three largest group totals.
func (c *calories) Part2(input string) (string, error) {
	totals, err := c.totals(input)
	if err != nil {
		return "", err
	}
	if len(totals) < 3 {
		return "", malformed("need at least 3 groups, got %d", len(totals))
	}
	slices.Sort(totals)
	top := totals[len(totals)-3:]
	return strconv.Itoa(top[0] + top[1] + top[2]), nil
}

// totals returns the sum of each group, in input order.
func (c *calories) totals(input string) ([]int, error) {
	groups := blocks(input)
	if len(groups) == 0 {
		return nil, malformed("no calorie groups")
	}
	totals := make([]int, 0, len(groups))
	for i, g := range groups {
		sum := 0
		for _, l := range g {
			n, err := strconv.Atoi(strings.TrimSpace(l))
			if err != nil {
				return nil, malformed("group %d: %v", i+1, err)
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	c.log.Debug("parsed calorie groups", zap.Int("groups", len(totals)))
	return totals, nil
}
