package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, grid *Grid) *Planner {
	t.Helper()
	p, err := NewPlanner(grid, Params{
		MaxIncrements: 8,
		Arc:           1,
		HalfWidth:     0.25,
		HalfHeight:    0.25,
	})
	require.NoError(t, err)
	return p
}

func TestFindPathStraightEast(t *testing.T) {
	p := newTestPlanner(t, NewGrid(16, 16))

	path, cost, ok := p.FindPath(0, 0, 0, 5, 0)
	require.True(t, ok)
	require.Len(t, path, 6)
	assert.Equal(t, uint32(5*distanceCostScale), cost)

	for i, pose := range path {
		assert.Equal(t, int32(i), pose.X)
		assert.Equal(t, int32(0), pose.Y)
		assert.Equal(t, int32(0), pose.Heading, "heading must stay unchanged")
		assert.False(t, pose.Reverse)
	}
}

func TestFindPathStraightDiagonal(t *testing.T) {
	p := newTestPlanner(t, NewGrid(16, 16))

	path, cost, ok := p.FindPath(0, 0, 1, 5, 5)
	require.True(t, ok)
	require.Len(t, path, 6)
	assert.Equal(t, uint32(5*2*distanceCostScale), cost)

	for i, pose := range path {
		assert.Equal(t, int32(i), pose.X)
		assert.Equal(t, int32(i), pose.Y)
		assert.Equal(t, int32(1), pose.Heading)
	}
}

func TestFindPathEnclosedStart(t *testing.T) {
	grid := NewGrid(16, 16)
	grid.Toggle(1, 0)
	grid.Toggle(1, 1)
	grid.Toggle(0, 1)
	p := newTestPlanner(t, grid)

	path, cost, ok := p.FindPath(0, 0, 0, 5, 5)
	assert.False(t, ok, "walled-in start must yield no path")
	assert.Nil(t, path)
	assert.Equal(t, uint32(0), cost)
}

func TestFindPathAvoidsObstacle(t *testing.T) {
	grid := NewGrid(16, 16)
	for y := int32(0); y < 6; y++ {
		grid.Toggle(4, y)
	}
	p := newTestPlanner(t, grid)

	path, _, ok := p.FindPath(0, 2, 0, 8, 2)
	require.True(t, ok)
	for _, pose := range path {
		assert.False(t, grid.IsBlocked(pose.X, pose.Y), "pose %+v sits on a blocked cell", pose)
	}
	assert.Equal(t, Pose{X: 0, Y: 2}, path[0])
	last := path[len(path)-1]
	assert.Equal(t, int32(8), last.X)
	assert.Equal(t, int32(2), last.Y)
}

func TestFindPathDeterministic(t *testing.T) {
	grid := NewGrid(16, 16)
	grid.Toggle(4, 3)
	grid.Toggle(5, 4)
	grid.Toggle(3, 5)
	p := newTestPlanner(t, grid)

	firstPath, firstCost, ok := p.FindPath(0, 0, 0, 10, 9)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		path, cost, ok := p.FindPath(0, 0, 0, 10, 9)
		require.True(t, ok)
		assert.Equal(t, firstCost, cost)
		assert.Equal(t, firstPath, path)
	}
}

func TestFindPathPrefersReverseStep(t *testing.T) {
	// Heading 6 faces up the grid, so the goal one row down sits
	// directly behind the agent. A single reverse step must beat the
	// wide forward loop.
	p := newTestPlanner(t, NewGrid(16, 16))

	path, cost, ok := p.FindPath(5, 5, 6, 5, 6)
	require.True(t, ok)
	require.Len(t, path, 2)

	second := path[1]
	assert.Equal(t, int32(6), second.Heading, "pure reverse keeps the facing heading")
	assert.True(t, second.Reverse)
	assert.Equal(t, uint32(5*distanceCostScale), cost,
		"one reverse unit step at the default multiplier")
}

func TestFindPathGoalHeadingIrrelevant(t *testing.T) {
	p := newTestPlanner(t, NewGrid(16, 16))

	path, _, ok := p.FindPath(0, 0, 0, 3, 7)
	require.True(t, ok)
	last := path[len(path)-1]
	assert.Equal(t, int32(3), last.X)
	assert.Equal(t, int32(7), last.Y)
}

func TestFindPathStartIsGoal(t *testing.T) {
	p := newTestPlanner(t, NewGrid(16, 16))

	path, cost, ok := p.FindPath(4, 4, 2, 4, 4)
	require.True(t, ok)
	assert.Equal(t, uint32(0), cost)
	require.Len(t, path, 1)
	assert.Equal(t, Pose{X: 4, Y: 4, Heading: 2}, path[0])
}

func TestFindPathWideAgentNeedsWideGap(t *testing.T) {
	// Wall with a one-cell gap: passable for a sub-cell agent, not for
	// a body that covers a 2x2 footprint.
	buildGrid := func() *Grid {
		g := NewGrid(16, 16)
		for y := int32(0); y < 16; y++ {
			if y != 8 {
				g.Toggle(7, y)
			}
		}
		return g
	}

	small := newTestPlanner(t, buildGrid())
	_, _, ok := small.FindPath(2, 8, 0, 12, 8)
	assert.True(t, ok, "sub-cell agent fits through the gap")

	wide, err := NewPlanner(buildGrid(), Params{
		MaxIncrements: 8,
		Arc:           1,
		HalfWidth:     0.75,
		HalfHeight:    0.75,
	})
	require.NoError(t, err)
	_, _, ok = wide.FindPath(2, 8, 0, 12, 8)
	assert.False(t, ok, "2x2 footprint cannot fit a one-cell gap")
}

func TestNewPlannerRejectsBadParams(t *testing.T) {
	_, err := NewPlanner(nil, Params{MaxIncrements: 8, Arc: 1, HalfWidth: 0.25, HalfHeight: 0.25})
	assert.Error(t, err)

	_, err = NewPlanner(NewGrid(8, 8), Params{MaxIncrements: 8, Arc: 4, HalfWidth: 0.25, HalfHeight: 0.25})
	assert.Error(t, err, "arc too wide for the discretization")
}

func TestNeighborsRespectFootprint(t *testing.T) {
	grid := NewGrid(16, 16)
	grid.Toggle(6, 5)
	p, err := NewPlanner(grid, Params{
		MaxIncrements: 8,
		Arc:           1,
		HalfWidth:     0.75,
		HalfHeight:    0.75,
	})
	require.NoError(t, err)

	// The 2x2 footprint of a pose at (5,5) covers (6,5), which is
	// blocked, so no neighbor may land there.
	for _, e := range p.neighbors(Pose{X: 4, Y: 5, Heading: 0}) {
		assert.NotEqual(t, Offset{5, 5}, Offset{e.State.X, e.State.Y})
	}
}
