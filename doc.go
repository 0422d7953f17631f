// Package statespace is a small toolkit for breadth-first search over
// implicit state spaces, plus the puzzle solvers that drive it.
//
// 🚀 What is statespace?
//
//	A generic, dependency-light search engine and its companions:
//		• bfs: lazy unbounded traversal (Walker) and shortest paths with a
//		  generation-time goal test (ShortestPath)
//		• packet: total ordering and parsing of nested integer lists
//		• gridgraph: rectangular integer grids viewed as implicit graphs
//		• puzzles: day solvers built on the three packages above
//		• config + cmd/aoc: YAML settings and the command-line front end
//
// ✨ Why statespace?
//
//   - States are any comparable value, or any value with a key function
//   - Nothing is materialised up front: children are generated on demand
//   - Hooks (OnEnqueue, OnDequeue) and limits instead of logging in the core
//
// Quick example, counting the states reachable from 1 under x → 2x, x → x+3
// below 20:
//
//	seen, err := bfs.Reachable(1, func(x int) []int {
//		var out []int
//		for _, y := range []int{2 * x, x + 3} {
//			if y < 20 {
//				out = append(out, y)
//			}
//		}
//		return out
//	})
//
//	go install github.com/katalvlaran/statespace/cmd/aoc@latest
package statespace
