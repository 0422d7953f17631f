package puzzles

import (
	"strconv"
	"strings"
)

// span is an inclusive section range.
type span struct{ lo, hi int }

func (s span) contains(o span) bool { return s.lo <= o.lo && o.hi <= s.hi }
func (s span) overlaps(o span) bool { return s.lo <= o.hi && o.lo <= s.hi }

// cleanup checks pairs of section assignments such as "2-4,6-8".
type cleanup struct{ settings }

func (*cleanup) Day() int      { return 4 }
func (*cleanup) Title() string { return "Camp Cleanup" }

// Part1 counts pairs where one range fully contains the other.
func (c *cleanup) Part1(input string) (string, error) {
	return c.count(input, func(a, b span) bool { return a.contains(b) || b.contains(a) })
}

// Part2 counts pairs whose ranges overlap at all.
func (c *cleanup) Part2(input string) (string, error) {
	return c.count(input, span.overlaps)
}

func (c *cleanup) count(input string, match func(a, b span) bool) (string, error) {
	n := 0
	for i, l := range lines(input) {
		left, right, ok := strings.Cut(strings.TrimSpace(l), ",")
		if !ok {
			return "", malformed("line %d: missing ',' in %q", i+1, l)
		}
		a, err := parseSpan(left)
		if err != nil {
			return "", malformed("line %d: %v", i+1, err)
		}
		b, err := parseSpan(right)
		if err != nil {
			return "", malformed("line %d: %v", i+1, err)
		}
		if match(a, b) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func parseSpan(s string) (span, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, malformed("range %q has no '-'", s)
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return span{}, err
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return span{}, err
	}
	if a > b {
		return span{}, malformed("range %q is reversed", s)
	}
	return span{a, b}, nil
}
