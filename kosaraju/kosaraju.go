// File: kosaraju.go
// Role: Run — the iterative, two-pass Kosaraju SCC algorithm.
package kosaraju

import (
	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/sccresult"
)

// frame mirrors tarjan's simulated-recursion frame: a vertex, a
// snapshot of its neighbors, and a cursor into that snapshot.
type frame struct {
	v         int
	neighbors []int
	pos       int
}

// dfsIterative walks from start, in g, using the supplied neighbor
// lookup, marking visited and calling onFinish(v) when v's whole
// subtree has been explored (post-order).
func dfsIterative(start int, neighborsOf func(int) ([]int, error), visited *graph.FlagBuffer, onFinish func(int)) error {
	nbs, err := neighborsOf(start)
	if err != nil {
		return err
	}
	visited.Set(start, true)
	stack := []frame{{v: start, neighbors: nbs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.pos < len(top.neighbors) {
			w := top.neighbors[top.pos]
			top.pos++
			if visited.Get(w) {
				continue
			}
			wNbs, werr := neighborsOf(w)
			if werr != nil {
				return werr
			}
			visited.Set(w, true)
			stack = append(stack, frame{v: w, neighbors: wNbs})
			continue
		}

		onFinish(top.v)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// Run computes the strongly connected components of g using Kosaraju's
// algorithm: a finish-order DFS over g, then a DFS over the transpose
// visited in reverse finish order, where each resulting tree is one
// component.
//
// Complexity: O(V + E) time, O(V + E) additional space for the
// transpose plus O(V) for visited/finish bookkeeping.
func Run(g *graph.Graph) (*sccresult.Result, error) {
	if g == nil {
		return nil, &graph.Error{Kind: graph.NullPointer, Op: "kosaraju.Run", Msg: "nil graph"}
	}
	n := g.NumVertices()
	if n == 0 {
		return nil, &graph.Error{Kind: graph.GraphEmpty, Op: "kosaraju.Run", Msg: "graph has no vertices"}
	}

	visited, err := graph.NewFlagBuffer(n, g.Arena())
	if err != nil {
		return nil, err
	}
	defer visited.Release()

	finishOrder := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if visited.Get(start) {
			continue
		}
		if err = dfsIterative(start, g.Neighbors, visited, func(v int) {
			finishOrder = append(finishOrder, v)
		}); err != nil {
			return nil, err
		}
	}

	transposed, err := graph.Transpose(g)
	if err != nil {
		return nil, err
	}
	defer transposed.Destroy()

	visited2, err := graph.NewFlagBuffer(n, transposed.Arena())
	if err != nil {
		return nil, err
	}
	defer visited2.Release()

	var components [][]int
	for i := len(finishOrder) - 1; i >= 0; i-- {
		start := finishOrder[i]
		if visited2.Get(start) {
			continue
		}
		var comp []int
		if err = dfsIterative(start, transposed.Neighbors, visited2, func(v int) {
			comp = append(comp, v)
		}); err != nil {
			return nil, err
		}
		components = append(components, comp)
	}

	return sccresult.Build(n, components), nil
}
