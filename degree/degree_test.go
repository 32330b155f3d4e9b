package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmax/core"
	"github.com/katalvlaran/lvlmax/degree"
)

func view(t *testing.T, edges [][2]int) *core.View[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g.View()
}

func TestCompute_Cycle5(t *testing.T) {
	v := view(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	s, err := degree.Compute(v, v.IDs())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Max)
	assert.Equal(t, 2, s.Min)
	assert.Equal(t, 2.0, s.Avg)
	assert.Zero(t, s.StdDev)
	assert.Equal(t, 5, s.Count)
}

func TestCompute_Star4(t *testing.T) {
	v := view(t, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	s, err := degree.Compute(v, v.IDs())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Max)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 1.5, s.Avg)
	assert.InDelta(t, 0.8660254, s.StdDev, 1e-6)
}

// TestCompute_Singleton: for one vertex max and avg both equal its degree.
func TestCompute_Singleton(t *testing.T) {
	v := view(t, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	s, err := degree.Compute(v, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Max)
	assert.Equal(t, 3.0, s.Avg)
}

// TestCompute_Multiplicity: parallel edges and loops are counted raw.
func TestCompute_Multiplicity(t *testing.T) {
	v := view(t, [][2]int{{0, 1}, {0, 1}, {2, 2}})
	s, err := degree.Compute(v, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Max)
	assert.Equal(t, 2.0, s.Avg)
}

func TestCompute_Errors(t *testing.T) {
	empty := core.NewGraph[int]().View()
	_, err := degree.Compute(empty, nil)
	require.ErrorIs(t, err, core.ErrEmptyVertexSet)

	v := view(t, [][2]int{{0, 1}})
	_, err = degree.Compute(v, []int{7})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
