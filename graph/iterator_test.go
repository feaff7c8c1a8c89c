package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TechieQuokka/sccgraph/graph"
)

func collectEdges(it *graph.EdgeIterator) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for {
		src, dst, ok := it.Next()
		if !ok {
			return out
		}
		out[[2]int{src, dst}] = true
	}
}

func TestEdgeIterator_VisitsEveryEdgeOnce(t *testing.T) {
	g, _ := graph.Create(3)
	buildVertices(t, g, 3)
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 0}}
	for _, e := range want {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	got := collectEdges(g.NewEdgeIterator())
	require.Len(t, got, len(want))
	for _, e := range want {
		require.True(t, got[[2]int{e[0], e[1]}], "missing edge %v", e)
	}
}

func TestEdgeIterator_Restartable(t *testing.T) {
	g, _ := graph.Create(2)
	buildVertices(t, g, 2)
	require.NoError(t, g.AddEdge(0, 1))

	it := g.NewEdgeIterator()
	first := collectEdges(it)
	it.Reset()
	second := collectEdges(it)
	require.Equal(t, first, second)
}

func TestEdgeIterator_EmptyGraph(t *testing.T) {
	g, _ := graph.Create(0)
	it := g.NewEdgeIterator()
	_, _, ok := it.Next()
	require.False(t, ok)
}
