package bfs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/statespace/bfs"
)

type xy struct{ X, Y int }

// boxed moves right or up inside 0 ≤ x,y ≤ limit.
func boxed(limit int) bfs.ChildrenFunc[xy] {
	return func(p xy) []xy {
		var out []xy
		for _, q := range []xy{{p.X + 1, p.Y}, {p.X, p.Y + 1}} {
			if q.X <= limit && q.Y <= limit {
				out = append(out, q)
			}
		}
		return out
	}
}

func at(target xy) bfs.GoalFunc[xy] {
	return func(p xy) bool { return p == target }
}

// ShortestPathSuite exercises ShortestPath under various scenarios.
type ShortestPathSuite struct {
	suite.Suite
}

func TestShortestPathSuite(t *testing.T) {
	suite.Run(t, new(ShortestPathSuite))
}

// TestReachable verifies length, endpoints and the generation-order tie-break.
func (s *ShortestPathSuite) TestReachable() {
	res, err := bfs.ShortestPath(xy{}, boxed(5), at(xy{2, 2}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)

	want := []xy{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if diff := cmp.Diff(want, res.Path); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
	steps, err := res.Steps()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, steps)
}

// TestUnreachable returns a normal "not found" result.
func (s *ShortestPathSuite) TestUnreachable() {
	res, err := bfs.ShortestPath(xy{}, boxed(5), at(xy{10, 10}))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Path)
	require.Equal(s.T(), 36, res.Explored, "every cell of the 6×6 box is expanded")

	_, err = res.Steps()
	require.ErrorIs(s.T(), err, bfs.ErrNoPath)
}

// TestStartIsGoal short-circuits before expanding anything.
func (s *ShortestPathSuite) TestStartIsGoal() {
	calls := 0
	children := func(p xy) []xy {
		calls++
		return nil
	}
	res, err := bfs.ShortestPath(xy{3, 3}, children, at(xy{3, 3}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []xy{{3, 3}}, res.Path)
	require.Zero(s.T(), calls)
	require.Zero(s.T(), res.Explored)
}

// TestGoalAtGenerationTime stops as soon as a goal child appears,
// leaving later siblings undiscovered.
func (s *ShortestPathSuite) TestGoalAtGenerationTime() {
	children := func(n int) []int { return []int{n + 1, n + 2, n + 3} }
	res, err := bfs.ShortestPath(0, children, func(n int) bool { return n >= 2 })
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 2}, res.Path)
	require.Equal(s.T(), 1, res.Explored)
}

// TestTieBreakFollowsChildOrder picks the first generated goal among equals.
func (s *ShortestPathSuite) TestTieBreakFollowsChildOrder() {
	children := func(n string) []string {
		if n == "root" {
			return []string{"left", "right"}
		}
		return nil
	}
	goal := func(n string) bool { return n != "root" }

	res, err := bfs.ShortestPath("root", children, goal)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"root", "left"}, res.Path)
}

// TestInvalidInput rejects missing functions and bad options.
func (s *ShortestPathSuite) TestInvalidInput() {
	_, err := bfs.ShortestPath(xy{}, boxed(1), nil)
	require.ErrorIs(s.T(), err, bfs.ErrNilGoal)

	_, err = bfs.ShortestPath(xy{}, nil, at(xy{1, 1}))
	require.ErrorIs(s.T(), err, bfs.ErrNilChildren)

	_, err = bfs.ShortestPath(xy{}, boxed(1), at(xy{1, 1}), bfs.WithMaxDepth(-2))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)
}

// TestLimitIsNotUnreachable distinguishes a cutoff from exhaustion.
func (s *ShortestPathSuite) TestLimitIsNotUnreachable() {
	res, err := bfs.ShortestPath(0, func(n int) []int { return []int{n + 1} },
		func(n int) bool { return n < 0 }, bfs.WithLimit(50))
	require.ErrorIs(s.T(), err, bfs.ErrLimitReached)
	require.False(s.T(), res.Found)
	require.Equal(s.T(), 50, res.Explored)
}

// TestMaxDepthHidesDistantGoal treats goals beyond MaxDepth as unreachable.
func (s *ShortestPathSuite) TestMaxDepthHidesDistantGoal() {
	res, err := bfs.ShortestPath(xy{}, boxed(5), at(xy{3, 3}), bfs.WithMaxDepth(5))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)

	res, err = bfs.ShortestPath(xy{}, boxed(5), at(xy{3, 3}), bfs.WithMaxDepth(6))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Len(s.T(), res.Path, 7)
}

// TestKeyedPeriodicState finds a path where identity is position and phase.
func (s *ShortestPathSuite) TestKeyedPeriodicState() {
	type state struct{ pos, t int }
	// the door at position 3 is open only on even minutes
	children := func(st state) []state {
		var out []state
		for _, p := range []int{st.pos + 1, st.pos} {
			if p == 3 && (st.t+1)%2 != 0 {
				continue
			}
			out = append(out, state{p, st.t + 1})
		}
		return out
	}
	key := func(st state) [2]int { return [2]int{st.pos, st.t % 2} }
	goal := func(st state) bool { return st.pos == 4 }

	res, err := bfs.ShortestPathKeyed(state{}, key, children, goal)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	last := res.Path[len(res.Path)-1]
	require.Equal(s.T(), 4, last.pos)
	require.Equal(s.T(), 5, last.t, "one wait is needed to meet the door on an even minute")
}
