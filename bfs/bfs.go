package bfs

import (
	"fmt"
	"iter"
)

// compactThreshold is the number of consumed queue slots after which the
// frontier slice is shifted down to reuse its backing array.
const compactThreshold = 1024

// Walker is a lazy, single-pass breadth-first traversal. It is not safe for
// concurrent use and cannot be restarted; build a new one to search again.
type Walker[T any, K comparable] struct {
	children ChildrenFunc[T]
	key      func(T) K
	opts     Options
	queue    []*Node[T]
	head     int
	visited  map[K]struct{}
	expanded int
	err      error
}

// Walk starts a breadth-first traversal from start, using the state itself
// as its visited-set identity.
// Returns ErrNilChildren or ErrOptionViolation for invalid input.
func Walk[T comparable](start T, children ChildrenFunc[T], opts ...Option) (*Walker[T, T], error) {
	return WalkKeyed(start, identity[T], children, opts...)
}

// WalkKeyed starts a breadth-first traversal from start. Two states are the
// same vertex iff key returns equal values for them.
// Returns ErrNilKey, ErrNilChildren or ErrOptionViolation for invalid input.
func WalkKeyed[T any, K comparable](start T, key func(T) K, children ChildrenFunc[T], opts ...Option) (*Walker[T, K], error) {
	if key == nil {
		return nil, ErrNilKey
	}
	if children == nil {
		return nil, ErrNilChildren
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &Walker[T, K]{
		children: children,
		key:      key,
		opts:     o,
		visited:  make(map[K]struct{}),
	}
	// start is marked visited before anything can loop back to it
	w.visited[key(start)] = struct{}{}
	w.enqueue(&Node[T]{State: start})

	return w, nil
}

func identity[T any](v T) T { return v }

// Next expands the head of the frontier and returns it. The second result is
// false once the frontier is empty or a limit stopped the walk; check Err to
// tell the two apart.
func (w *Walker[T, K]) Next() (*Node[T], bool) {
	n, ok := w.pop()
	if !ok {
		return nil, false
	}
	w.expand(n, nil)

	return n, true
}

// All returns an iterator over the remaining nodes. Breaking out of the loop
// leaves the walker positioned after the last yielded node.
func (w *Walker[T, K]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for {
			n, ok := w.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Find advances the walk until a node whose state satisfies pred is yielded.
// The goal is tested when a node is dequeued, so the start state is checked
// first.
func (w *Walker[T, K]) Find(pred GoalFunc[T]) (*Node[T], bool) {
	for n := range w.All() {
		if pred(n.State) {
			return n, true
		}
	}

	return nil, false
}

// Err reports why the walk stopped early. It is nil when the frontier was
// simply exhausted.
func (w *Walker[T, K]) Err() error {
	return w.err
}

// Discovered returns the number of distinct states seen so far.
func (w *Walker[T, K]) Discovered() int {
	return len(w.visited)
}

// Frontier returns the number of discovered states awaiting expansion.
func (w *Walker[T, K]) Frontier() int {
	return len(w.queue) - w.head
}

// Expanded returns the number of nodes taken off the frontier so far.
func (w *Walker[T, K]) Expanded() int {
	return w.expanded
}

// enqueue appends n to the frontier and fires OnEnqueue.
func (w *Walker[T, K]) enqueue(n *Node[T]) {
	w.opts.OnEnqueue(n.State, n.Depth)
	w.queue = append(w.queue, n)
}

// pop removes the head of the frontier, honoring Limit.
func (w *Walker[T, K]) pop() (*Node[T], bool) {
	if w.err != nil || w.head == len(w.queue) {
		return nil, false
	}
	if w.opts.Limit > 0 && w.expanded >= w.opts.Limit {
		w.err = fmt.Errorf("%w: %d expansions", ErrLimitReached, w.opts.Limit)
		return nil, false
	}

	n := w.queue[w.head]
	w.queue[w.head] = nil
	w.head++
	switch {
	case w.head == len(w.queue):
		w.queue = w.queue[:0]
		w.head = 0
	case w.head >= compactThreshold && 2*w.head >= len(w.queue):
		live := copy(w.queue, w.queue[w.head:])
		clear(w.queue[live:])
		w.queue = w.queue[:live]
		w.head = 0
	}
	w.expanded++
	w.opts.OnDequeue(n.State, n.Depth)

	return n, true
}

// expand discovers the unseen children of n. When goal is non-nil and an
// unseen child satisfies it, that child is returned without being queued
// and the remaining children are left undiscovered.
func (w *Walker[T, K]) expand(n *Node[T], goal GoalFunc[T]) *Node[T] {
	depth := n.Depth + 1
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}
	for _, c := range w.children(n.State) {
		k := w.key(c)
		if _, seen := w.visited[k]; seen {
			continue
		}
		w.visited[k] = struct{}{}
		child := &Node[T]{State: c, Depth: depth, parent: n}
		if goal != nil && goal(c) {
			return child
		}
		w.enqueue(child)
	}

	return nil
}

// Reachable drains a walk from start and returns every reachable state in
// visitation order.
func Reachable[T comparable](start T, children ChildrenFunc[T], opts ...Option) ([]T, error) {
	w, err := Walk(start, children, opts...)
	if err != nil {
		return nil, err
	}
	var out []T
	for n := range w.All() {
		out = append(out, n.State)
	}

	return out, w.Err()
}
