package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TechieQuokka/sccgraph/internal/arena"
)

func TestPool_AllocZeroedAndSized(t *testing.T) {
	p, err := arena.Create(64, 8)
	require.NoError(t, err)

	buf, err := p.Alloc(16)
	require.NoError(t, err)
	require.Len(t, buf, 16)
	for _, b := range buf {
		require.Zero(t, b)
	}
	require.Equal(t, 16, p.UsedSize())
}

func TestPool_AlignmentRoundedToPowerOfTwo(t *testing.T) {
	p, err := arena.Create(16, 3) // 3 is not a power of two -> rounds up to 4
	require.NoError(t, err)

	// Each 5-byte request is padded to the next multiple of 4 (8 bytes of
	// block space); two fit in the 16-byte block, a third needs a new one.
	_, err = p.Alloc(5)
	require.NoError(t, err)
	_, err = p.Alloc(5)
	require.NoError(t, err)
	require.Equal(t, 16, p.TotalSize())

	_, err = p.Alloc(5)
	require.NoError(t, err)
	require.Equal(t, 32, p.TotalSize())
}

func TestPool_FreeAndReuse(t *testing.T) {
	p, err := arena.Create(4096, 8)
	require.NoError(t, err)

	buf, err := p.Alloc(32)
	require.NoError(t, err)
	totalBefore := p.TotalSize()
	p.Free(buf)
	require.Equal(t, 0, p.UsedSize())

	buf2, err := p.Alloc(32)
	require.NoError(t, err)
	require.Len(t, buf2, 32)
	require.Equal(t, totalBefore, p.TotalSize(), "reused buffer must not grow total reservation")
}

func TestPool_BlockGrowthOnOverflow(t *testing.T) {
	p, err := arena.Create(16, 1)
	require.NoError(t, err)

	_, err = p.Alloc(10)
	require.NoError(t, err)
	_, err = p.Alloc(10) // does not fit remaining 6 bytes of first block
	require.NoError(t, err)
	require.Equal(t, 32, p.TotalSize())
}

func TestPool_Reset(t *testing.T) {
	p, _ := arena.Create(64, 8)
	_, _ = p.Alloc(8)
	p.Reset()
	require.Equal(t, 0, p.UsedSize())
	require.Equal(t, 0, p.TotalSize())
}

func TestPool_DestroyThenAllocFails(t *testing.T) {
	p, _ := arena.Create(64, 8)
	p.Destroy()
	_, err := p.Alloc(8)
	require.ErrorIs(t, err, arena.ErrUseAfterDestroy)
}

func TestPool_InvalidSize(t *testing.T) {
	p, _ := arena.Create(64, 8)
	_, err := p.Alloc(0)
	require.ErrorIs(t, err, arena.ErrInvalidSize)
}
