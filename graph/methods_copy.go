// File: methods_copy.go
// Role: Copy — a structurally identical Graph sharing no mutable state
//       with the source.
// Note:
//   - The copy never inherits the source's Arena: an Arena's block
//     lifetime belongs to its owning Graph, and sharing it across two
//     independently destroyed graphs would create a use-after-Destroy
//     hazard. Copy always creates an unbacked (plain heap) Graph; callers
//     that want an arena-backed copy pass WithArena explicitly via their
//     own Create call and replay the source's edges onto it.
package graph

// Copy returns a new Graph with the same vertices, edges, and per-vertex
// user data as g. The two graphs share no mutable state: mutating one
// never affects the other.
//
// Complexity: O(V + E).
func Copy(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, newError(NullPointer, "Copy", "nil graph")
	}

	out, err := Create(cap(g.vertices))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(g.vertices); i++ {
		if _, err = out.AddVertex(); err != nil {
			return nil, err
		}
		out.vertices[i].userData = g.vertices[i].userData // shallow copy: the pointer moves, not its target
	}

	it := g.NewEdgeIterator()
	for {
		src, dst, ok := it.Next()
		if !ok {
			break
		}
		if err = out.AddEdge(src, dst); err != nil {
			return nil, err
		}
	}

	return out, nil
}
