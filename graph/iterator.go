// File: iterator.go
// Role: Lazy, restartable edge iteration in graph-layout order.
package graph

// EdgeIterator produces every (src, dst) pair exactly once, in
// vertex-major then list order. Mutating the Graph while an iterator is
// live invalidates that iterator.
type EdgeIterator struct {
	g   *Graph
	vi  int
	cur *edgeNode
}

// NewEdgeIterator returns an iterator positioned before the first edge.
func (g *Graph) NewEdgeIterator() *EdgeIterator {
	return &EdgeIterator{g: g, vi: -1}
}

// Reset rewinds the iterator to its initial position so it can be
// replayed from the start.
func (it *EdgeIterator) Reset() {
	it.vi = -1
	it.cur = nil
}

// Next returns the next (src, dst) pair, or ok == false once every edge
// has been visited.
func (it *EdgeIterator) Next() (src, dst int, ok bool) {
	for {
		if it.cur != nil {
			src, dst = it.vi, it.cur.dst
			it.cur = it.cur.next

			return src, dst, true
		}
		it.vi++
		if it.vi >= len(it.g.vertices) {
			return 0, 0, false
		}
		it.cur = it.g.vertices[it.vi].edges
	}
}
