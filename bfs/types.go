package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilChildren is returned when no children function is supplied.
	ErrNilChildren = errors.New("bfs: children function is nil")

	// ErrNilGoal is returned when ShortestPath is called without a goal predicate.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrNilKey is returned when WalkKeyed is called without a key function.
	ErrNilKey = errors.New("bfs: key function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrLimitReached is reported when WithLimit stops a search before the
	// frontier is exhausted.
	ErrLimitReached = errors.New("bfs: expansion limit reached")

	// ErrNoPath is returned by PathResult.Steps when no goal state was reached.
	ErrNoPath = errors.New("bfs: no path found")
)

// ChildrenFunc returns the states reachable from state in one transition.
// The returned order is the order in which children are discovered.
type ChildrenFunc[T any] func(state T) []T

// GoalFunc reports whether state is a target of the search.
type GoalFunc[T any] func(state T) bool

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by the
// constructor that receives them.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// MaxDepth, if > 0, prevents discovering states deeper than MaxDepth.
	// 0 disables the limit.
	MaxDepth int

	// Limit, if > 0, stops the search after Limit expansions.
	Limit int

	// OnEnqueue is called when a state is discovered and queued,
	// including the start state at depth 0.
	OnEnqueue func(state any, depth int)

	// OnDequeue is called when a state is taken off the frontier for expansion.
	OnDequeue func(state any, depth int)

	err error
}

// DefaultOptions returns Options with no limits and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(any, int) {},
		OnDequeue: func(any, int) {},
	}
}

// WithMaxDepth bounds the depth of discovered states.
//
//	d > 0: do not discover states deeper than d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLimit stops the search after n expansions. This is the external cutoff
// for children functions that describe infinite graphs.
//
//	n > 0: at most n expansions
//	n == 0: unlimited
//	n < 0: ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithOnEnqueue registers a callback to run when a state is queued.
func WithOnEnqueue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a state is expanded.
func WithOnDequeue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Node is one entry of the explored search tree: a state plus a link to the
// node it was discovered from. Links point strictly from child to parent, so
// many children share one ancestor chain and the chain stays valid after the
// walker that built it is gone.
type Node[T any] struct {
	State T
	// Depth is the number of transitions from the start state.
	Depth  int
	parent *Node[T]
}

// Parent returns the node this one was discovered from, or nil for the start node.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Path returns the states from the start node to n, inclusive.
func (n *Node[T]) Path() []T {
	path := make([]T, n.Depth+1)
	for cur, i := n, n.Depth; cur != nil; cur, i = cur.parent, i-1 {
		path[i] = cur.State
	}

	return path
}

// PathResult is the outcome of ShortestPath.
//   - Path: states from start to goal, inclusive; nil when not found.
//   - Found: whether a goal state was reached.
//   - Explored: number of nodes expanded.
type PathResult[T any] struct {
	Path     []T
	Found    bool
	Explored int
}

// Steps returns the number of transitions on the path, or ErrNoPath.
func (r *PathResult[T]) Steps() (int, error) {
	if !r.Found {
		return 0, ErrNoPath
	}

	return len(r.Path) - 1, nil
}
