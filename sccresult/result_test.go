package sccresult_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TechieQuokka/sccgraph/sccresult"
)

func TestBuild_PartitionAndAggregates(t *testing.T) {
	r := sccresult.Build(6, [][]int{{5}, {2, 3, 4}, {0, 1}})

	require.Equal(t, 3, r.ComponentCount())
	require.Equal(t, 3, r.LargestComponentSize())
	require.Equal(t, 1, r.SmallestComponentSize())
	require.InDelta(t, 2.0, r.AverageComponentSize(), 1e-9)

	for c, members := range [][]int{{5}, {2, 3, 4}, {0, 1}} {
		for _, v := range members {
			got, err := r.VertexComponent(v)
			require.NoError(t, err)
			require.Equal(t, c, got)
		}
	}
}

func TestBuild_EmptyGraphZeroComponents(t *testing.T) {
	r := sccresult.Build(0, nil)
	require.Equal(t, 0, r.ComponentCount())
	require.Equal(t, 0, r.SmallestComponentSize())
	require.Equal(t, 0, r.LargestComponentSize())
	require.Zero(t, r.AverageComponentSize())
}

func TestComponentSize_OutOfRange(t *testing.T) {
	r := sccresult.Build(2, [][]int{{0, 1}})
	_, err := r.ComponentSize(5)
	require.ErrorIs(t, err, sccresult.ErrOutOfRange)
}

func TestVertexComponent_OutOfRange(t *testing.T) {
	r := sccresult.Build(2, [][]int{{0, 1}})
	_, err := r.VertexComponent(-1)
	require.ErrorIs(t, err, sccresult.ErrOutOfRange)
}

func TestComponentVertices_View(t *testing.T) {
	r := sccresult.Build(3, [][]int{{0, 1, 2}})
	v, err := r.ComponentVertices(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, v)
}

func TestDeepCopy_Independence(t *testing.T) {
	r := sccresult.Build(2, [][]int{{0}, {1}})
	clone := r.DeepCopy()

	v, _ := clone.ComponentVertices(0)
	v[0] = 99 // mutate the copy's backing slice

	orig, _ := r.ComponentVertices(0)
	require.Equal(t, 0, orig[0], "mutating the copy must not affect the original")
}
