// File: methods_edges.go
// Role: Edge lifecycle — AddEdge/RemoveEdge/HasEdge and the duplicate
//       scan they share.
// Determinism:
//   - AddEdge prepends, so a vertex's most recently added edge is first
//     in its out-edge list.
// Policy:
//   - Success paths never touch the Graph's last-error slot: a caller
//     that wants to observe the slot must clear it before the call.
package graph

func (g *Graph) hasEdgeUnchecked(src, dst int) bool {
	for e := g.vertices[src].edges; e != nil; e = e.next {
		if e.dst == dst {
			return true
		}
	}

	return false
}

// AddEdge inserts a directed edge src->dst. Self-loops (src==dst) are
// permitted. Returns EdgeExists, unchanged, if the edge is already
// present; returns InvalidVertex if either endpoint is out of range.
//
// Complexity: O(out_degree(src)) for the duplicate check, O(1) to insert.
func (g *Graph) AddEdge(src, dst int) error {
	if !g.validVertex(src) || !g.validVertex(dst) {
		return g.setErr(newError(InvalidVertex, "AddEdge", "src/dst out of range"))
	}
	if g.hasEdgeUnchecked(src, dst) {
		return g.setErr(newError(EdgeExists, "AddEdge", "duplicate directed edge"))
	}

	g.vertices[src].edges = &edgeNode{dst: dst, next: g.vertices[src].edges}
	g.vertices[src].outDegree++
	g.numEdges++

	return nil
}

// RemoveEdge deletes the edge src->dst, if present. Returns
// EdgeNotFound, unchanged, if no such edge exists.
//
// Complexity: O(out_degree(src)).
func (g *Graph) RemoveEdge(src, dst int) error {
	if !g.validVertex(src) || !g.validVertex(dst) {
		return g.setErr(newError(InvalidVertex, "RemoveEdge", "src/dst out of range"))
	}

	var prev *edgeNode
	for cur := g.vertices[src].edges; cur != nil; cur = cur.next {
		if cur.dst == dst {
			if prev == nil {
				g.vertices[src].edges = cur.next
			} else {
				prev.next = cur.next
			}
			g.vertices[src].outDegree--
			g.numEdges--

			return nil
		}
		prev = cur
	}

	return g.setErr(newError(EdgeNotFound, "RemoveEdge", "no such edge"))
}

// HasEdge reports whether src->dst exists. Invalid indices yield false,
// not an error: "does this edge exist" is an unsatisfied query, not a
// violated invariant, so it never touches the last-error slot.
//
// Complexity: O(out_degree(src)).
func (g *Graph) HasEdge(src, dst int) bool {
	if g == nil {
		return false
	}
	if !g.validVertex(src) || !g.validVertex(dst) {
		return false
	}

	return g.hasEdgeUnchecked(src, dst)
}
