package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/bfs"
)

// ExampleWalk_gridTraversal demonstrates breadth-first layering on a 3×3 grid
// where moves go right or down. States appear in non-decreasing Manhattan
// distance from the corner.
func ExampleWalk_gridTraversal() {
	type pt struct{ R, C int }
	children := func(p pt) []pt {
		var out []pt
		if p.C+1 < 3 {
			out = append(out, pt{p.R, p.C + 1})
		}
		if p.R+1 < 3 {
			out = append(out, pt{p.R + 1, p.C})
		}
		return out
	}

	w, err := bfs.Walk(pt{}, children)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for n := range w.All() {
		fmt.Printf("%d_%d ", n.State.R, n.State.C)
	}
	fmt.Println()
	// Output:
	// 0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2
}

// ExampleShortestPath_network finds the fewest-hop route in a small network
// where two competing routes exist from "A" to "K": one of length 4 and one
// of length 3.
func ExampleShortestPath_network() {
	edges := map[string][]string{
		"A": {"B", "E"},
		"B": {"C"},
		"C": {"D", "G"},
		"D": {"K", "I"},
		"E": {"F"},
		"F": {"K"},
		"G": {"H"},
		"I": {"J"},
	}
	children := func(v string) []string { return edges[v] }

	res, err := bfs.ShortestPath("A", children, func(v string) bool { return v == "K" })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [A E F K]
}

// ExampleShortestPath_unreachable shows that an unreachable goal is a normal
// result rather than an error.
func ExampleShortestPath_unreachable() {
	children := func(n int) []int {
		if n < 5 {
			return []int{n + 1}
		}
		return nil
	}
	res, err := bfs.ShortestPath(0, children, func(n int) bool { return n == 42 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := res.Steps(); err != nil {
		fmt.Println(err, "after", res.Explored, "expansions")
	}
	// Output:
	// bfs: no path found after 6 expansions
}

// ExampleWalker_Find counts steps to a target with a dequeue-time test,
// walking the parent chain of the node that was found.
func ExampleWalker_Find() {
	// Collatz-style moves: n -> n/2 (even) or n -> 3n+1
	children := func(n int) []int {
		out := []int{3*n + 1}
		if n%2 == 0 {
			out = append(out, n/2)
		}
		return out
	}

	w, err := bfs.Walk(6, children, bfs.WithLimit(10_000))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, ok := w.Find(func(v int) bool { return v == 1 })
	fmt.Println(ok, n.Depth, n.Path())
	// Output:
	// true 8 [6 3 10 5 16 8 4 2 1]
}
