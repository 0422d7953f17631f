// Package packet implements the recursive ordering of nested integer lists.
//
// A Value is either a scalar integer or an ordered list of Values. Two values
// are ordered structurally:
//
//   - two scalars compare by integer value;
//   - two lists compare element by element, the first unequal pair deciding;
//     if one list runs out first it is the smaller, equal-length lists with
//     all pairs equal are equal;
//   - a scalar compared with a list is first promoted to a one-element list.
//
// Compare recurses only into strictly smaller sub-values (a promoted scalar
// is compared against the list's elements, never against the list itself),
// so it always terminates.
package packet

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Value is a tagged variant: a scalar or a list. The zero Value is the scalar 0.
type Value struct {
	list  bool
	num   int
	items []Value
}

// Int returns a scalar Value.
func Int(n int) Value {
	return Value{num: n}
}

// List returns a list Value holding vs. List() is the empty list.
func List(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{list: true, items: vs}
}

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.list }

// Int returns the scalar held by v and true, or 0 and false for a list.
func (v Value) Int() (int, bool) {
	if v.list {
		return 0, false
	}
	return v.num, true
}

// Items returns the elements of a list Value, or nil for a scalar.
func (v Value) Items() []Value {
	return v.items
}

// String renders v in bracket notation, e.g. [1,[2,3],[]].
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	if !v.list {
		sb.WriteString(strconv.Itoa(v.num))
		return
	}
	sb.WriteByte('[')
	for i, it := range v.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		it.write(sb)
	}
	sb.WriteByte(']')
}

// Compare returns -1 if a orders before b, +1 if after, and 0 if they are equal.
func Compare(a, b Value) int {
	switch {
	case !a.list && !b.list:
		return cmp.Compare(a.num, b.num)
	case a.list && b.list:
		return compareItems(a.items, b.items)
	case a.list:
		return compareItems(a.items, []Value{b})
	default:
		return compareItems([]Value{a}, b.items)
	}
}

func compareItems(xs, ys []Value) int {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if c := Compare(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(xs), len(ys))
}

// Less reports whether a orders strictly before b.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b are equal under Compare. Note that 2 and [2]
// are Equal.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }

// Sort orders vs in place; equal values keep their relative order.
func Sort(vs []Value) {
	slices.SortStableFunc(vs, Compare)
}
