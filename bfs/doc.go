// Package bfs provides breadth-first search over implicit graphs: graphs whose
// vertices and edges are never materialized, only discovered on demand through
// a caller-supplied children function.
//
// What
//
//   - Walk / WalkKeyed return a lazy Walker that yields search nodes in
//     non-decreasing distance (transition count) from a start state.
//   - ShortestPath / ShortestPathKeyed return the fewest-transition sequence
//     of states from the start to the first state satisfying a goal predicate,
//     or a PathResult with Found == false when the reachable space is exhausted.
//   - Every Node keeps a link to its parent, so the ancestor chain (and hence
//     the path from the start) can be rebuilt at any time, during or after
//     the traversal.
//
// Why
//
//   - Puzzle and simulation states (grid cells, cell+time pairs, board
//     snapshots) are rarely worth turning into an explicit graph first.
//   - The search discipline (FIFO frontier, visited-on-discovery) is the same
//     every time; only the children function differs.
//
// Visited set
//
//	A state is marked visited the moment it is first discovered, not when it
//	is dequeued. The frontier therefore never holds two nodes with equal keys,
//	and each reachable state is yielded exactly once, even on cyclic graphs.
//	Walk uses the state itself as the key (T must be comparable); WalkKeyed
//	takes an explicit key function for states that are not comparable or whose
//	identity is a projection (for example, time modulo a period).
//
// Determinism
//
//	Children are enqueued in the order the children function returns them,
//	and the frontier is strictly FIFO. When several goal states lie at the same
//	minimal distance, ShortestPath returns the first one generated. Callers
//	that need a particular tie-break encode it in the children order.
//
// Goal test timing
//
//	ShortestPath tests the goal when a child is generated (so it can stop one
//	layer early); Walker.Find tests it when a node is dequeued. Both return a
//	minimal-length path, but may pick different goals among equals.
//
// Complexity (V = reachable states, E = transitions examined)
//
//   - Time:   O(V + E) key lookups.
//   - Memory: O(V) for the visited set, frontier and parent links.
//
// Usage
//
//	w, err := bfs.Walk(start, children)
//	if err != nil {
//		// ErrNilChildren or ErrOptionViolation
//	}
//	for n := range w.All() {
//		fmt.Println(n.Depth, n.State)
//	}
//
//	res, err := bfs.ShortestPath(start, children, isGoal, bfs.WithLimit(1_000_000))
//	if err != nil {
//		// ErrNilChildren, ErrNilGoal, ErrOptionViolation or ErrLimitReached
//	}
//	if !res.Found {
//		// unreachable: a normal outcome, not a fault
//	}
//
// Options
//
//   - WithMaxDepth(d):  do not discover states deeper than d (>0); 0 = no limit.
//   - WithLimit(n):     stop after n expansions (>0); 0 = no limit.
//   - WithOnEnqueue(fn): hook when a state is discovered and queued.
//   - WithOnDequeue(fn): hook when a state is taken off the frontier.
//
// Errors
//
//   - ErrNilChildren, ErrNilGoal, ErrNilKey for missing functions.
//   - ErrOptionViolation for invalid options.
//   - ErrLimitReached when WithLimit stops the search early.
//   - ErrNoPath from PathResult.Steps when no goal was reached.
//
// Panics raised by the children function propagate to the caller unchanged.
package bfs
