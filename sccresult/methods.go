// File: methods.go
// Role: Read-only accessors and DeepCopy.
package sccresult

// ComponentCount returns the number of components, k.
//
// Complexity: O(1).
func (r *Result) ComponentCount() int { return len(r.components) }

// ComponentSize returns |C_c|, the number of vertices in component c.
//
// Complexity: O(1).
func (r *Result) ComponentSize(c int) (int, error) {
	if c < 0 || c >= len(r.components) {
		return -1, ErrOutOfRange
	}

	return len(r.components[c]), nil
}

// VertexComponent returns the component id that vertex v belongs to.
//
// Complexity: O(1).
func (r *Result) VertexComponent(v int) (int, error) {
	if v < 0 || v >= len(r.vertexToComponent) {
		return -1, ErrOutOfRange
	}

	return r.vertexToComponent[v], nil
}

// ComponentVertices returns a read-only view of component c's vertex
// ids. Callers must not mutate the returned slice.
//
// Complexity: O(1).
func (r *Result) ComponentVertices(c int) ([]int, error) {
	if c < 0 || c >= len(r.components) {
		return nil, ErrOutOfRange
	}

	return r.components[c], nil
}

// LargestComponentSize returns the size of the largest component.
func (r *Result) LargestComponentSize() int { return r.largest }

// SmallestComponentSize returns the size of the smallest component.
func (r *Result) SmallestComponentSize() int { return r.smallest }

// AverageComponentSize returns the mean component size.
func (r *Result) AverageComponentSize() float64 { return r.average }

// NumVertices returns the total vertex count the result was built over.
func (r *Result) NumVertices() int { return len(r.vertexToComponent) }

// DeepCopy returns an independent Result sharing no backing arrays with
// r: mutating one's internals (not possible through the exported API,
// but relevant for callers holding onto the slices from
// ComponentVertices) never affects the other.
//
// Complexity: O(V).
func (r *Result) DeepCopy() *Result {
	components := make([][]int, len(r.components))
	for i, c := range r.components {
		cc := make([]int, len(c))
		copy(cc, c)
		components[i] = cc
	}
	vtc := make([]int, len(r.vertexToComponent))
	copy(vtc, r.vertexToComponent)

	return &Result{
		components:        components,
		vertexToComponent: vtc,
		largest:           r.largest,
		smallest:          r.smallest,
		average:           r.average,
	}
}
