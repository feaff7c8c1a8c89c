package sccresult

import "errors"

// ErrOutOfRange is returned by ComponentSize/VertexComponent/
// ComponentVertices when given an index outside the valid range.
var ErrOutOfRange = errors.New("sccresult: index out of range")
