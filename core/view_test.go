package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmax/core"
)

func pathGraph(t *testing.T, n int) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

// TestView_Snapshot ensures a View does not observe later mutations.
func TestView_Snapshot(t *testing.T) {
	g := pathGraph(t, 3)
	v := g.View()

	require.NoError(t, g.AddEdge(2, 3))

	require.Equal(t, 3, v.Len())
	_, ok := v.Index(3)
	require.False(t, ok)

	i, ok := v.Index(2)
	require.True(t, ok)
	require.Equal(t, 1, v.Degree(i))
	require.Equal(t, 2, v.ID(i))
}

func TestView_HasEdge(t *testing.T) {
	v := pathGraph(t, 4).View()
	require.True(t, v.HasEdge(0, 1))
	require.True(t, v.HasEdge(1, 0))
	require.False(t, v.HasEdge(0, 2))
	require.False(t, v.HasEdge(0, 99))
}

// TestView_Induced restricts a path 0-1-2-3-4 to {4,1,2,0} (order given
// deliberately shuffled) and checks order, adjacency and the dropped edges.
func TestView_Induced(t *testing.T) {
	v := pathGraph(t, 5).View()

	sub, err := v.Induced([]int{4, 1, 2, 0, 2})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 4}, sub.IDs(), "parent order is preserved")

	require.True(t, sub.HasEdge(0, 1))
	require.True(t, sub.HasEdge(1, 2))
	require.False(t, sub.HasEdge(2, 4))

	i4, _ := sub.Index(4)
	require.Zero(t, sub.Degree(i4))
}

func TestView_InducedErrors(t *testing.T) {
	v := pathGraph(t, 3).View()

	_, err := v.Induced(nil)
	require.ErrorIs(t, err, core.ErrEmptyVertexSet)

	_, err = v.Induced([]int{0, 42})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestView_Spatial checks that positions carry through Induced and that a
// partially positioned graph degrades to a non-spatial view.
func TestView_Spatial(t *testing.T) {
	g := pathGraph(t, 3)
	g.SetPosition(0, core.Position{X: 1, Y: 1})

	v := g.View()
	require.False(t, v.Spatial())
	_, ok := v.Position(0)
	require.False(t, ok)

	g.SetPosition(1, core.Position{X: 2, Y: 2})
	g.SetPosition(2, core.Position{X: 3, Y: 3})
	sub, err := g.View().Induced([]int{2, 1})
	require.NoError(t, err)
	require.True(t, sub.Spatial())

	p, ok := sub.Position(1)
	require.True(t, ok)
	require.Equal(t, core.Position{X: 3, Y: 3}, p)
}
