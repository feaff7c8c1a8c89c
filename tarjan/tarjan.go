// File: tarjan.go
// Role: Run — the iterative Tarjan SCC algorithm.
package tarjan

import (
	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/sccresult"
)

// frame is one level of the simulated DFS call stack: the vertex being
// explored, a snapshot of its neighbors, and a cursor into that
// snapshot. Keeping the cursor explicit (rather than Go call-stack
// recursion) is what lets Run handle chain graphs hundreds of thousands
// of vertices deep without exhausting the goroutine stack.
type frame struct {
	v         int
	neighbors []int
	pos       int
}

// Run computes the strongly connected components of g using Tarjan's
// algorithm: a single DFS tracking a discovery index, a lowlink, an
// explicit on-stack vertex stack, and an on-stack membership flag.
//
// Components are emitted in reverse topological order of the
// condensation (the first component emitted is a condensation sink);
// vertex order within a component is stack-pop order.
//
// Complexity: O(V + E) time, O(V) additional space.
func Run(g *graph.Graph) (*sccresult.Result, error) {
	if g == nil {
		return nil, &graph.Error{Kind: graph.NullPointer, Op: "tarjan.Run", Msg: "nil graph"}
	}
	n := g.NumVertices()
	if n == 0 {
		return nil, &graph.Error{Kind: graph.GraphEmpty, Op: "tarjan.Run", Msg: "graph has no vertices"}
	}

	arena := g.Arena()
	index, err := graph.NewIntBuffer(n, arena)
	if err != nil {
		return nil, err
	}
	defer index.Release()
	lowlink, err := graph.NewIntBuffer(n, arena)
	if err != nil {
		return nil, err
	}
	defer lowlink.Release()
	onStack, err := graph.NewFlagBuffer(n, arena)
	if err != nil {
		return nil, err
	}
	defer onStack.Release()
	assigned, err := graph.NewFlagBuffer(n, arena)
	if err != nil {
		return nil, err
	}
	defer assigned.Release()

	nextIndex := 0
	sccStack := make([]int, 0, n)
	frameStack := make([]frame, 0, n)
	var components [][]int

	pushRoot := func(start int) error {
		neighbors, nerr := g.Neighbors(start)
		if nerr != nil {
			return nerr
		}
		index.Set(start, nextIndex)
		lowlink.Set(start, nextIndex)
		nextIndex++
		assigned.Set(start, true)
		onStack.Set(start, true)
		sccStack = append(sccStack, start)
		frameStack = append(frameStack, frame{v: start, neighbors: neighbors})

		return nil
	}

	for start := 0; start < n; start++ {
		if assigned.Get(start) {
			continue
		}
		if err = pushRoot(start); err != nil {
			return nil, err
		}

		for len(frameStack) > 0 {
			top := &frameStack[len(frameStack)-1]

			if top.pos < len(top.neighbors) {
				w := top.neighbors[top.pos]
				top.pos++

				switch {
				case !assigned.Get(w):
					wNeighbors, nerr := g.Neighbors(w)
					if nerr != nil {
						return nil, nerr
					}
					index.Set(w, nextIndex)
					lowlink.Set(w, nextIndex)
					nextIndex++
					assigned.Set(w, true)
					onStack.Set(w, true)
					sccStack = append(sccStack, w)
					frameStack = append(frameStack, frame{v: w, neighbors: wNeighbors})
				case onStack.Get(w):
					if iw := index.Get(w); iw < lowlink.Get(top.v) {
						lowlink.Set(top.v, iw)
					}
				default:
					// w belongs to an already-completed SCC; ignore.
				}

				continue
			}

			// All of v's neighbors explored: close the frame.
			v := top.v
			frameStack = frameStack[:len(frameStack)-1]
			if len(frameStack) > 0 {
				parent := &frameStack[len(frameStack)-1]
				if lv := lowlink.Get(v); lv < lowlink.Get(parent.v) {
					lowlink.Set(parent.v, lv)
				}
			}

			if lowlink.Get(v) == index.Get(v) {
				comp := make([]int, 0, 1)
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					onStack.Set(w, false)
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				components = append(components, comp)
			}
		}
	}

	return sccresult.Build(n, components), nil
}
