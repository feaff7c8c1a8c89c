// Package arena implements the block-based allocator collaborator:
// Create(blockSize, alignment), Alloc, Free, Reset, Destroy,
// UsedSize/TotalSize.
//
// It is stdlib-only by necessity rather than preference: no repository
// in the retrieval pack ships a general-purpose arena/slab allocator
// library to adopt (see DESIGN.md), so this is a small slab pool over
// plain []byte blocks with a size-classed free list for Free/reuse.
//
// Pool is safe for concurrent use: a graph may be shared by multiple
// independent SCC computations running in parallel (each engine reads
// the graph and owns its own scratch buffers), and those buffers may
// come from the same arena, so every Pool method is guarded by a
// single mutex.
package arena
