package kosaraju_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/kosaraju"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.Create(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestRun_NilGraph(t *testing.T) {
	_, err := kosaraju.Run(nil)
	require.ErrorIs(t, err, graph.ErrNullPointer)
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := graph.Create(0)
	require.NoError(t, err)
	_, err = kosaraju.Run(g)
	require.ErrorIs(t, err, graph.ErrGraphEmpty)
}

func TestRun_SingletonNoEdges(t *testing.T) {
	g := buildGraph(t, 1, nil)
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, 1, r.ComponentCount())
}

func TestRun_SelfLoopSingleton(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 0}, {0, 1}})
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, 2, r.ComponentCount())
}

func TestRun_SingleCycle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, 1, r.ComponentCount())
	require.Equal(t, 3, r.LargestComponentSize())
}

func TestRun_TwoComponents(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, 2, r.ComponentCount())

	gotSizes := map[int]int{}
	for c := 0; c < r.ComponentCount(); c++ {
		members, err := r.ComponentVertices(c)
		require.NoError(t, err)
		gotSizes[len(members)]++
	}
	require.Equal(t, map[int]int{3: 2}, gotSizes)
}

func TestRun_DisconnectedGraph(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 0}})
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, 3, r.ComponentCount())
}

func TestRun_LongChainDoesNotOverflow(t *testing.T) {
	const n = 200000
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildGraph(t, n, edges)
	r, err := kosaraju.Run(g)
	require.NoError(t, err)
	require.Equal(t, n, r.ComponentCount())
}
