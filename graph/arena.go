// File: arena.go
// Role: The Arena collaborator contract plus safe, GC-friendly scratch
//       buffers (IntBuffer/FlagBuffer) that engines carve out of an
//       Arena when the Graph was created with one.
// Policy:
//   - Arena never backs pointer-containing structures (vertex/edge nodes
//     stay on the normal Go heap so the garbage collector can trace them).
//     It backs only flat, pointer-free scratch data: per-vertex dense int
//     arrays (index/lowlink) and boolean marks (on-stack/visited).
//   - A Graph's Arena may be drawn on by more than one engine run at
//     once (independent SCC computations over the same graph, running
//     concurrently, each owning its own IntBuffer/FlagBuffer set); any
//     Arena implementation handed to WithArena must itself be safe for
//     concurrent Alloc/Free, the way internal/arena.Pool is.
package graph

import "encoding/binary"

// Arena is a block-based allocator that the graph (and, transitively,
// the SCC engines) can request byte-sized blocks from instead of
// relying purely on the Go allocator. A nil Arena is always valid:
// callers fall back to plain make([]byte, n).
type Arena interface {
	// Alloc returns a zeroed buffer of exactly size bytes, or an error if
	// the arena cannot satisfy the request.
	Alloc(size int) ([]byte, error)
	// Free returns buf to the arena for reuse. Passing a buffer not
	// obtained from this Arena is a caller error; implementations are not
	// required to detect it.
	Free(buf []byte)
	// Reset logically wipes the arena; all previously issued buffers
	// become invalid for further use.
	Reset()
	// UsedSize reports bytes currently handed out and not yet freed.
	UsedSize() int
	// TotalSize reports bytes reserved from the underlying allocator.
	TotalSize() int
	// Destroy releases the arena's backing storage.
	Destroy()
}

const intWidth = 8 // bytes per stored int (fixed width, little-endian)

// IntBuffer is a dense array of n ints, backed either by an Arena-provided
// byte block or, when arena is nil, by a plain Go slice. Values are
// encoded with encoding/binary rather than unsafe pointer casts, so the
// buffer never needs the garbage collector to understand its contents.
type IntBuffer struct {
	buf   []byte
	arena Arena
	n     int
}

// NewIntBuffer allocates a zero-initialized IntBuffer of n ints. If a is
// non-nil, the backing bytes are requested from it; otherwise a plain
// slice is allocated. Returns AllocationFailure if the arena rejects the
// request.
func NewIntBuffer(n int, a Arena) (*IntBuffer, error) {
	if n < 0 {
		return nil, newError(InvalidParameter, "NewIntBuffer", "negative length")
	}
	size := n * intWidth
	var buf []byte
	if a != nil {
		b, err := a.Alloc(size)
		if err != nil {
			return nil, newError(AllocationFailure, "NewIntBuffer", err.Error())
		}
		buf = b
	} else {
		buf = make([]byte, size)
	}

	return &IntBuffer{buf: buf, arena: a, n: n}, nil
}

// Get returns the value stored at index i.
func (b *IntBuffer) Get(i int) int {
	off := i * intWidth
	return int(int64(binary.LittleEndian.Uint64(b.buf[off : off+intWidth])))
}

// Set stores v at index i.
func (b *IntBuffer) Set(i int, v int) {
	off := i * intWidth
	binary.LittleEndian.PutUint64(b.buf[off:off+intWidth], uint64(int64(v)))
}

// Len reports the number of int slots.
func (b *IntBuffer) Len() int { return b.n }

// Release returns the backing bytes to the originating Arena, if any.
func (b *IntBuffer) Release() {
	if b.arena != nil {
		b.arena.Free(b.buf)
		b.buf = nil
	}
}

// FlagBuffer is a dense array of n booleans, one byte per slot: a byte
// doubles perfectly as boolean storage, so no binary encoding is needed.
type FlagBuffer struct {
	buf   []byte
	arena Arena
}

// NewFlagBuffer allocates a zero-initialized (all-false) FlagBuffer of n
// flags, arena-backed when a is non-nil.
func NewFlagBuffer(n int, a Arena) (*FlagBuffer, error) {
	if n < 0 {
		return nil, newError(InvalidParameter, "NewFlagBuffer", "negative length")
	}
	var buf []byte
	if a != nil {
		b, err := a.Alloc(n)
		if err != nil {
			return nil, newError(AllocationFailure, "NewFlagBuffer", err.Error())
		}
		buf = b
	} else {
		buf = make([]byte, n)
	}

	return &FlagBuffer{buf: buf, arena: a}, nil
}

// Get reports whether flag i is set.
func (b *FlagBuffer) Get(i int) bool { return b.buf[i] != 0 }

// Set marks flag i as v.
func (b *FlagBuffer) Set(i int, v bool) {
	if v {
		b.buf[i] = 1
	} else {
		b.buf[i] = 0
	}
}

// Len reports the number of flag slots.
func (b *FlagBuffer) Len() int { return len(b.buf) }

// Release returns the backing bytes to the originating Arena, if any.
func (b *FlagBuffer) Release() {
	if b.arena != nil {
		b.arena.Free(b.buf)
		b.buf = nil
	}
}
