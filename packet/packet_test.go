package packet_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/packet"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

// TestCompare_ScalarPromotion follows [[1],[2,3,4]] vs [[1],4]: the second
// elements compare as [2,3,4] vs [4], and 2 < 4 decides.
func TestCompare_ScalarPromotion(t *testing.T) {
	a := packet.List(packet.List(packet.Int(1)), packet.List(packet.Int(2), packet.Int(3), packet.Int(4)))
	b := packet.List(packet.List(packet.Int(1)), packet.Int(4))

	assert.Equal(t, -1, packet.Compare(a, b))
	assert.Equal(t, 1, packet.Compare(b, a))
	assert.True(t, packet.Less(a, b))
}

// TestCompare_Table covers scalars, length fallback and promotion both ways.
func TestCompare_Table(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"3", "5", -1},
		{"5", "5", 0},
		{"[]", "[]", 0},
		{"[]", "[3]", -1},
		{"[7,7,7,7]", "[7,7,7]", 1},
		{"[9]", "[[8,7,6]]", 1},
		{"[[[]]]", "[[]]", 1},
		{"2", "[2]", 0},
		{"[2]", "[[[2]]]", 0},
		{"[2,0]", "[[2]]", 1},
		{"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := packet.MustParse(tt.a), packet.MustParse(tt.b)
			assert.Equal(t, tt.want, packet.Compare(a, b))
			assert.Equal(t, -tt.want, packet.Compare(b, a), "antisymmetry")
		})
	}
}

// TestCompare_SamplePairs sums the indices of correctly ordered pairs.
func TestCompare_SamplePairs(t *testing.T) {
	pairs, err := packet.ParsePairs(sample)
	require.NoError(t, err)
	require.Len(t, pairs, 8)

	var ordered []int
	for i, p := range pairs {
		if packet.Compare(p[0], p[1]) <= 0 {
			ordered = append(ordered, i+1)
		}
	}
	require.Equal(t, []int{1, 2, 4, 6}, ordered)
}

// TestSort orders the sample together with the two divider packets.
func TestSort(t *testing.T) {
	vs, err := packet.ParseAll(sample + "\n[[2]]\n[[6]]\n")
	require.NoError(t, err)
	packet.Sort(vs)

	got := make([]string, len(vs))
	for i, v := range vs {
		got[i] = v.String()
	}
	want := strings.Fields(`
		[]
		[[]]
		[[[]]]
		[1,1,3,1,1]
		[1,1,5,1,1]
		[[1],[2,3,4]]
		[1,[2,[3,[4,[5,6,0]]]],8,9]
		[1,[2,[3,[4,[5,6,7]]]],8,9]
		[[1],4]
		[[2]]
		[3]
		[[4,4],4,4]
		[[4,4],4,4,4]
		[[6]]
		[7,7,7]
		[7,7,7,7]
		[[8,7,6]]
		[9]`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_RoundTrip checks that String renders the parsed form back.
func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"[]", "[[]]", "[10,[2,[]],0]", "42", "[[1],4]"} {
		v, err := packet.Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, s, v.String())
	}
}

// TestParse_Accessors inspects the variant of parsed values.
func TestParse_Accessors(t *testing.T) {
	v := packet.MustParse("[7,[]]")
	require.True(t, v.IsList())
	_, ok := v.Int()
	require.False(t, ok)

	items := v.Items()
	require.Len(t, items, 2)
	n, ok := items[0].Int()
	require.True(t, ok)
	require.Equal(t, 7, n)
	require.True(t, items[1].IsList())
	require.Empty(t, items[1].Items())
}

// TestParse_Errors verifies malformed input is rejected with sentinel errors.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", packet.ErrEmpty},
		{"   ", packet.ErrEmpty},
		{"[1,2", packet.ErrSyntax},
		{"[1,,2]", packet.ErrSyntax},
		{"[1;2]", packet.ErrSyntax},
		{"[1, 2]", packet.ErrSyntax},
		{"x", packet.ErrSyntax},
		{"[1]]", packet.ErrTrailing},
		{"12a", packet.ErrTrailing},
		{"[99999999999999999999]", packet.ErrSyntax},
		{"18446744073709551617", packet.ErrSyntax},
	}
	for _, tt := range tests {
		_, err := packet.Parse(tt.in)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.in)
	}

	_, err := packet.ParsePairs("[1]\n[2]\n[3]\n")
	assert.ErrorIs(t, err, packet.ErrSyntax)

	_, err = packet.ParsePairs("[1]\n[2\n")
	assert.ErrorIs(t, err, packet.ErrSyntax)
	assert.Contains(t, err.Error(), "pair 1 line 2")

	_, err = packet.Parse("[1,[99999999999999999999]]")
	require.ErrorIs(t, err, packet.ErrSyntax)
	assert.Contains(t, err.Error(), "offset 4")
}

// TestParse_LargestScalar keeps integer order at the edge of the int range.
func TestParse_LargestScalar(t *testing.T) {
	big := packet.MustParse("[9223372036854775807]")
	require.Equal(t, 1, packet.Compare(big, packet.MustParse("[5]")))
}

// TestParse_CRLF accepts Windows line endings in multi-line input.
func TestParse_CRLF(t *testing.T) {
	pairs, err := packet.ParsePairs("[1]\r\n[2]\r\n\r\n[[3]]\r\n4\r\n")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "[[3]]", pairs[1][0].String())

	all, err := packet.ParseAll("[1]\r\n\r\n[2,3]\r\n")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "[2,3]", all[1].String())
}
