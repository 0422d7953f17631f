package puzzles

import (
	"strconv"
	"strings"
)

// tuning finds the first window of distinct characters in a datastream.
type tuning struct{ settings }

func (*tuning) Day() int      { return 6 }
func (*tuning) Title() string { return "Tuning Trouble" }

// Part1 finds the start-of-packet marker (4 distinct characters).
func (*tuning) Part1(input string) (string, error) { return marker(input, 4) }

// Part2 finds the start-of-message marker (14 distinct characters).
func (*tuning) Part2(input string) (string, error) { return marker(input, 14) }

// marker returns the number of characters read when the last size characters
// are pairwise distinct.
func marker(input string, size int) (string, error) {
	s := strings.TrimSpace(input)
	var counts [256]int
	dupes := 0
	for i := 0; i < len(s); i++ {
		if counts[s[i]]++; counts[s[i]] == 2 {
			dupes++
		}
		if i >= size {
			out := s[i-size]
			if counts[out]--; counts[out] == 1 {
				dupes--
			}
		}
		if i >= size-1 && dupes == 0 {
			return strconv.Itoa(i + 1), nil
		}
	}
	return "", malformed("no %d-character marker in %d bytes", size, len(s))
}
