// File: methods_vertices.go
// Role: Vertex lifecycle — AddVertex with doubling growth, user-data
//       side channel, out-degree query.
package graph

// growVertices doubles the vertex table's backing capacity. Called only
// when the table is exactly full, so the amortized cost of AddVertex
// stays O(1).
func (g *Graph) growVertices() {
	newCap := cap(g.vertices) * 2
	if newCap == 0 {
		newCap = defaultCapacity
	}
	nv := make([]vertexSlot, len(g.vertices), newCap)
	copy(nv, g.vertices)
	g.vertices = nv
}

// AddVertex appends a new vertex and returns its id, which equals the
// previous NumVertices(). Growth (doubling) happens transparently when
// the table is full.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() (int, error) {
	if len(g.vertices) == cap(g.vertices) {
		g.growVertices()
	}
	id := len(g.vertices)
	g.vertices = append(g.vertices, vertexSlot{id: id})

	return id, nil
}

// OutDegree returns the number of out-edges of vertex v.
//
// Complexity: O(1).
func (g *Graph) OutDegree(v int) (int, error) {
	if !g.validVertex(v) {
		return -1, g.setErr(newError(InvalidVertex, "OutDegree", "vertex out of range"))
	}

	return g.vertices[v].outDegree, nil
}

// SetUserData attaches an opaque side-channel pointer to vertex v.
// Algorithms in this module never read it; it exists purely for callers
// that want to stash application data alongside a vertex id.
func (g *Graph) SetUserData(v int, data interface{}) error {
	if !g.validVertex(v) {
		return g.setErr(newError(InvalidVertex, "SetUserData", "vertex out of range"))
	}
	g.vertices[v].userData = data

	return nil
}

// UserData returns the side-channel pointer previously attached to v via
// SetUserData, or nil if none was set.
func (g *Graph) UserData(v int) (interface{}, error) {
	if !g.validVertex(v) {
		return nil, g.setErr(newError(InvalidVertex, "UserData", "vertex out of range"))
	}

	return g.vertices[v].userData, nil
}
