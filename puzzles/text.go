package puzzles

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// lines splits input into lines, dropping a trailing newline and any '\r'.
func lines(input string) []string {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// blocks groups non-blank lines separated by blank lines.
func blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// mod is the non-negative remainder of a divided by b (b > 0).
func mod[T constraints.Integer](a, b T) T {
	return ((a % b) + b) % b
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
