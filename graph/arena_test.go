package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/internal/arena"
)

func TestIntBuffer_PlainAllocation(t *testing.T) {
	b, err := graph.NewIntBuffer(4, nil)
	require.NoError(t, err)
	require.Equal(t, 4, b.Len())
	for i := 0; i < 4; i++ {
		require.Equal(t, 0, b.Get(i))
	}
	b.Set(2, -17)
	require.Equal(t, -17, b.Get(2))
}

func TestIntBuffer_ArenaBacked(t *testing.T) {
	p, err := arena.Create(256, 8)
	require.NoError(t, err)

	b, err := graph.NewIntBuffer(3, p)
	require.NoError(t, err)
	b.Set(0, 100)
	b.Set(1, -1)
	b.Set(2, 1<<30)
	require.Equal(t, 100, b.Get(0))
	require.Equal(t, -1, b.Get(1))
	require.Equal(t, 1<<30, b.Get(2))
	require.Greater(t, p.UsedSize(), 0)

	b.Release()
	require.Equal(t, 0, p.UsedSize())
}

func TestFlagBuffer_ArenaBacked(t *testing.T) {
	p, err := arena.Create(256, 8)
	require.NoError(t, err)

	fb, err := graph.NewFlagBuffer(5, p)
	require.NoError(t, err)
	require.Equal(t, 5, fb.Len())
	require.False(t, fb.Get(3))
	fb.Set(3, true)
	require.True(t, fb.Get(3))
	fb.Set(3, false)
	require.False(t, fb.Get(3))
}

func TestGraph_WithArena(t *testing.T) {
	p, err := arena.Create(512, 8)
	require.NoError(t, err)

	g, err := graph.Create(4, graph.WithArena(p))
	require.NoError(t, err)
	require.NotNil(t, g.Arena())

	g.Destroy()
}

func TestIntBuffer_NegativeLength(t *testing.T) {
	_, err := graph.NewIntBuffer(-1, nil)
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}
