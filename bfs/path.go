package bfs

// ShortestPath returns the fewest-transition path from start to the first
// discovered state satisfying goal. The goal is tested when a child is
// generated, so the first goal in breadth-first generation order wins.
//
// An unreachable goal is reported as a PathResult with Found == false and a
// nil error. Errors are reserved for invalid input (ErrNilChildren,
// ErrNilGoal, ErrOptionViolation) and for ErrLimitReached.
func ShortestPath[T comparable](start T, children ChildrenFunc[T], goal GoalFunc[T], opts ...Option) (*PathResult[T], error) {
	return ShortestPathKeyed(start, identity[T], children, goal, opts...)
}

// ShortestPathKeyed is ShortestPath with an explicit visited-set key.
func ShortestPathKeyed[T any, K comparable](start T, key func(T) K, children ChildrenFunc[T], goal GoalFunc[T], opts ...Option) (*PathResult[T], error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	w, err := WalkKeyed(start, key, children, opts...)
	if err != nil {
		return nil, err
	}
	if goal(start) {
		return &PathResult[T]{Path: []T{start}, Found: true}, nil
	}

	for {
		n, ok := w.pop()
		if !ok {
			return &PathResult[T]{Explored: w.expanded}, w.err
		}
		if hit := w.expand(n, goal); hit != nil {
			return &PathResult[T]{Path: hit.Path(), Found: true, Explored: w.expanded}, nil
		}
	}
}
