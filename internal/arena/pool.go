// File: pool.go
// Role: The Pool type — a bump-allocating slab pool with a size-classed
//       free list, implementing graph.Arena structurally (no import
//       cycle: arena does not import graph, graph only requires that
//       *Pool satisfy its Arena interface by method set).
package arena

import "sync"

// defaultBlockSize is used when Create is given blockSize <= 0.
const defaultBlockSize = 4096

// Pool is a block-based arena: it reserves blocks of at least blockSize
// bytes from the Go heap and bump-allocates within the current block.
// Freed buffers are kept on a size-classed free list for reuse by a
// later Alloc of the same size, avoiding unbounded growth in workloads
// that allocate/free same-shaped scratch buffers repeatedly (exactly
// the tarjan/kosaraju usage pattern via graph.IntBuffer/FlagBuffer).
//
// mu guards every field below: a Pool attached to one Graph may be
// drawn on by several independent engine runs over that graph at once,
// and those runs execute on separate goroutines.
type Pool struct {
	mu        sync.Mutex
	blockSize int
	alignment int
	blocks    [][]byte
	offset    int
	used      int
	total     int
	freeList  map[int][][]byte
	destroyed bool
}

// Create returns a new Pool. blockSize <= 0 uses defaultBlockSize;
// alignment is rounded up to the next power of two if it isn't one
// already (alignment <= 0 is treated as 1, i.e. unaligned).
func Create(blockSize, alignment int) (*Pool, error) {
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	if alignment <= 0 {
		alignment = 1
	}

	return &Pool{
		blockSize: blockSize,
		alignment: nextPow2(alignment),
		freeList:  make(map[int][][]byte),
	}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func alignUp(size, alignment int) int {
	if alignment <= 1 {
		return size
	}
	if rem := size % alignment; rem != 0 {
		return size + (alignment - rem)
	}

	return size
}

// Alloc returns a zeroed buffer of exactly size bytes.
func (p *Pool) Alloc(size int) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.destroyed {
		return nil, ErrUseAfterDestroy
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	if reuse := p.freeList[size]; len(reuse) > 0 {
		buf := reuse[len(reuse)-1]
		p.freeList[size] = reuse[:len(reuse)-1]
		for i := range buf {
			buf[i] = 0
		}
		p.used += size

		return buf, nil
	}

	aligned := alignUp(size, p.alignment)
	if len(p.blocks) == 0 || p.offset+aligned > len(p.blocks[len(p.blocks)-1]) {
		blockLen := p.blockSize
		if aligned > blockLen {
			blockLen = aligned
		}
		p.blocks = append(p.blocks, make([]byte, blockLen))
		p.total += blockLen
		p.offset = 0
	}

	cur := p.blocks[len(p.blocks)-1]
	buf := cur[p.offset : p.offset+size : p.offset+aligned]
	p.offset += aligned
	p.used += size

	return buf, nil
}

// Free returns buf to the size-classed free list for reuse. A nil or
// zero-length buf is a no-op. Free does not check where buf came from:
// any other buffer, including one not obtained from this Pool, is put on
// the free list for its length and that length is subtracted from
// UsedSize (floored at zero).
func (p *Pool) Free(buf []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.destroyed || len(buf) == 0 {
		return
	}
	p.freeList[len(buf)] = append(p.freeList[len(buf)], buf)
	p.used -= len(buf)
	if p.used < 0 {
		p.used = 0
	}
}

// Reset logically wipes the pool: every previously issued buffer
// becomes invalid for further use, and accounting returns to zero.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.blocks = nil
	p.freeList = make(map[int][][]byte)
	p.offset = 0
	p.used = 0
	p.total = 0
}

// UsedSize reports bytes currently handed out and not yet freed.
func (p *Pool) UsedSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.used
}

// TotalSize reports bytes reserved from the Go allocator across all
// blocks.
func (p *Pool) TotalSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.total
}

// Destroy releases the pool's backing blocks. Idempotent.
func (p *Pool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.blocks = nil
	p.freeList = nil
	p.destroyed = true
}
