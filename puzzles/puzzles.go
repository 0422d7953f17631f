// Package puzzles holds the day-specific solvers. Each solver parses its own
// input format, runs a small simulation or search, and answers two parts as
// strings. Searches go through package bfs; nested packet ordering through
// package packet.
package puzzles

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/statespace/bfs"
)

// Sentinel errors for puzzle execution.
var (
	// ErrMalformed is wrapped by every input parsing failure.
	ErrMalformed = errors.New("puzzles: malformed input")
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("puzzles: unknown day")
	// ErrBadPart is returned for parts other than 1 and 2.
	ErrBadPart = errors.New("puzzles: part must be 1 or 2")
	// ErrUnsolvable is returned when a search exhausts without reaching its goal.
	ErrUnsolvable = errors.New("puzzles: no solution")
)

// NoPartTwo is the answer reported by days that have no second part.
const NoPartTwo = "no part two"

// Solver answers both parts of one day.
type Solver interface {
	Day() int
	Title() string
	Part1(input string) (string, error)
	Part2(input string) (string, error)
}

// Option configures the solvers built by Default.
type Option func(*settings)

// settings is shared by all solvers of one registry.
type settings struct {
	log   *zap.Logger
	limit int
}

// WithLogger sets the logger solvers report progress to.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSearchLimit caps every state-space search at n expansions (0 = none).
func WithSearchLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.limit = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// searchOptions returns the bfs options every search in a solver shares.
func (s settings) searchOptions() []bfs.Option {
	if s.limit == 0 {
		return nil
	}
	return []bfs.Option{bfs.WithLimit(s.limit)}
}

// Registry is an ordered set of solvers keyed by day.
type Registry struct {
	solvers map[int]Solver
	days    []int
}

// NewRegistry registers solvers; a later solver for the same day replaces
// an earlier one.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if _, dup := r.solvers[s.Day()]; !dup {
			r.days = append(r.days, s.Day())
		}
		r.solvers[s.Day()] = s
	}
	slices.Sort(r.days)
	return r
}

// Default returns a registry with every implemented day.
func Default(opts ...Option) *Registry {
	s := newSettings(opts)
	return NewRegistry(
		&calories{s},
		&cleanup{s},
		&tuning{s},
		&hillClimb{s},
		&distress{s},
		&diffusion{s},
		&blizzards{s},
		&snafu{s},
	)
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	return slices.Clone(r.days)
}

// Solve runs one part of s on input.
func Solve(ctx context.Context, s Solver, part int, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch part {
	case 1:
		return s.Part1(input)
	case 2:
		return s.Part2(input)
	default:
		return "", fmt.Errorf("%w: got %d", ErrBadPart, part)
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
