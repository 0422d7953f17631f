package packet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for parsing.
var (
	// ErrEmpty indicates there was nothing to parse.
	ErrEmpty = errors.New("packet: empty input")
	// ErrSyntax indicates a malformed value.
	ErrSyntax = errors.New("packet: syntax error")
	// ErrTrailing indicates extra input after a complete value.
	ErrTrailing = errors.New("packet: trailing data")
)

// parser is a recursive-descent reader over a single line.
type parser struct {
	src string
	pos int
}

// Parse reads one value in bracket notation: a non-negative integer, or
// '[' followed by comma-separated values and ']'. Whitespace is not allowed
// inside a value; surrounding whitespace is trimmed.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, ErrEmpty
	}
	p := &parser{src: s}
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.src) {
		return Value{}, fmt.Errorf("%w at offset %d: %q", ErrTrailing, p.pos, p.src[p.pos:])
	}
	return v, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (p *parser) fail(what string) error {
	if p.pos >= len(p.src) {
		return fmt.Errorf("%w: expected %s at end of input", ErrSyntax, what)
	}
	return fmt.Errorf("%w: expected %s at offset %d, found %q", ErrSyntax, what, p.pos, p.src[p.pos])
}

func (p *parser) value() (Value, error) {
	if p.pos >= len(p.src) {
		return Value{}, p.fail("value")
	}
	switch c := p.src[p.pos]; {
	case c == '[':
		return p.list()
	case c >= '0' && c <= '9':
		return p.number()
	default:
		return Value{}, p.fail("'[' or digit")
	}
}

func (p *parser) number() (Value, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return Value{}, fmt.Errorf("%w: integer at offset %d: %w", ErrSyntax, start, err)
	}
	return Int(n), nil
}

func (p *parser) list() (Value, error) {
	p.pos++ // '['
	items := []Value{}
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return List(items...), nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
		if p.pos >= len(p.src) {
			return Value{}, p.fail("',' or ']'")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return List(items...), nil
		default:
			return Value{}, p.fail("',' or ']'")
		}
	}
}

// ParsePairs reads blank-line separated groups of exactly two values.
func ParsePairs(input string) ([][2]Value, error) {
	var pairs [][2]Value
	for i, block := range splitBlocks(input) {
		if len(block) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d lines, want 2", ErrSyntax, i+1, len(block))
		}
		var pair [2]Value
		for j, line := range block {
			v, err := Parse(line)
			if err != nil {
				return nil, fmt.Errorf("pair %d line %d: %w", i+1, j+1, err)
			}
			pair[j] = v
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ParseAll reads every non-blank line as a value.
func ParseAll(input string) ([]Value, error) {
	var out []Value
	for i, line := range splitLines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// splitLines splits input on '\n' after dropping every '\r', so CRLF files
// parse like LF ones.
func splitLines(input string) []string {
	return strings.Split(strings.ReplaceAll(input, "\r", ""), "\n")
}

// splitBlocks groups non-blank lines separated by one or more blank lines.
func splitBlocks(input string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range splitLines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
