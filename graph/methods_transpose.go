// File: methods_transpose.go
// Role: Transpose — builds Gᵀ with every edge reversed.
package graph

// Transpose returns a new Graph with the same vertex count as g and,
// for every edge u->v in g, the edge v->u in the result. The resulting
// adjacency order is implementation-defined.
//
// Complexity: O(V + E).
func Transpose(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, newError(NullPointer, "Transpose", "nil graph")
	}

	out, err := Create(cap(g.vertices))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(g.vertices); i++ {
		if _, err = out.AddVertex(); err != nil {
			return nil, err
		}
	}

	it := g.NewEdgeIterator()
	for {
		src, dst, ok := it.Next()
		if !ok {
			break
		}
		// Invariant 5 on g guarantees src->dst is unique, so dst->src in
		// the transpose is unique too; AddEdge cannot legitimately return
		// EdgeExists here.
		if err = out.AddEdge(dst, src); err != nil {
			return nil, err
		}
	}

	return out, nil
}
