package puzzles

import (
	"math"
	"strings"

	"go.uber.org/zap"
)

// snafu sums balanced base-5 numbers with digits 2, 1, 0, - (-1) and = (-2).
type snafu struct{ settings }

func (*snafu) Day() int      { return 25 }
func (*snafu) Title() string { return "Full of Hot Air" }

// Part1 adds every fuel requirement and reports the sum as SNAFU.
func (s *snafu) Part1(input string) (string, error) {
	var total int64
	for i, l := range lines(input) {
		n, err := FromSNAFU(strings.TrimSpace(l))
		if err != nil {
			return "", malformed("line %d: %v", i+1, err)
		}
		if (n > 0 && total > math.MaxInt64-n) || (n < 0 && total < math.MinInt64-n) {
			return "", malformed("line %d: fuel sum overflows int64", i+1)
		}
		total += n
	}
	s.log.Debug("summed fuel requirements", zap.Int64("total", total))
	return ToSNAFU(total), nil
}

// Part2 is the free final star.
func (*snafu) Part2(string) (string, error) { return NoPartTwo, nil }

const snafuDigits = "=-012"

// FromSNAFU decodes a balanced base-5 numeral. Numerals outside the int64
// range are rejected with ErrMalformed.
func FromSNAFU(s string) (int64, error) {
	if s == "" {
		return 0, malformed("empty SNAFU numeral")
	}
	var n int64
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(snafuDigits, s[i])
		if d < 0 {
			return 0, malformed("bad SNAFU digit %q at %d", s[i], i)
		}
		if n > (math.MaxInt64-2)/5 || n < (math.MinInt64+2)/5 {
			return 0, malformed("SNAFU numeral %q overflows int64", s)
		}
		n = n*5 + int64(d-2)
	}
	return n, nil
}

// ToSNAFU encodes n as a balanced base-5 numeral.
func ToSNAFU(n int64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n != 0 {
		d := mod(n, 5)
		if d > 2 {
			d -= 5
		}
		digits = append(digits, snafuDigits[d+2])
		n = (n - d) / 5
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
