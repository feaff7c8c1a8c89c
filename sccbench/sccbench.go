// File: sccbench.go
// Role: Run both SCC engines on the same graph and record comparative
//       timing, memory, and recursion-depth figures.
package sccbench

import (
	"runtime"
	"time"

	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/kosaraju"
	"github.com/TechieQuokka/sccgraph/sccresult"
	"github.com/TechieQuokka/sccgraph/tarjan"
)

// Record holds one benchmark's observational output. All fields are
// descriptive, not prescriptive: nothing in the library reads a Record
// back to change engine selection.
type Record struct {
	TarjanTimeMS       float64
	KosarajuTimeMS     float64
	TarjanPeakBytes    uint64
	KosarajuPeakBytes  uint64
	MaxStackDepth      int
	TransposeEdgeCount int
	ResultsMatch       bool
}

// Run executes both Tarjan and Kosaraju against g and returns a Record
// comparing them. Returns an error only if either engine fails (e.g. g
// is nil or empty); the underlying engine error is propagated as-is.
func Run(g *graph.Graph) (Record, error) {
	var rec Record

	var before, after runtime.MemStats

	runtime.ReadMemStats(&before)
	start := time.Now()
	tResult, err := tarjan.Run(g)
	rec.TarjanTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		return Record{}, err
	}
	runtime.ReadMemStats(&after)
	rec.TarjanPeakBytes = memDelta(before, after)

	runtime.ReadMemStats(&before)
	start = time.Now()
	kResult, err := kosaraju.Run(g)
	rec.KosarajuTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		return Record{}, err
	}
	runtime.ReadMemStats(&after)
	rec.KosarajuPeakBytes = memDelta(before, after)

	rec.MaxStackDepth = maxDFSDepth(g)

	transposed, err := graph.Transpose(g)
	if err != nil {
		return Record{}, err
	}
	rec.TransposeEdgeCount = transposed.NumEdges()
	transposed.Destroy()

	rec.ResultsMatch = partitionsEqual(tResult, kResult)

	return rec, nil
}

func memDelta(before, after runtime.MemStats) uint64 {
	if after.TotalAlloc <= before.TotalAlloc {
		return 0
	}
	return after.TotalAlloc - before.TotalAlloc
}

// partitionsEqual reports whether r1 and r2 describe the same
// unordered partition of [0, n), independent of component numbering.
func partitionsEqual(r1, r2 *sccresult.Result) bool {
	if r1.NumVertices() != r2.NumVertices() {
		return false
	}
	n := r1.NumVertices()
	for v := 0; v < n; v++ {
		a1, _ := r1.VertexComponent(v)
		a2, _ := r2.VertexComponent(v)
		for w := 0; w < n; w++ {
			b1, _ := r1.VertexComponent(w)
			b2, _ := r2.VertexComponent(w)
			if (a1 == b1) != (a2 == b2) {
				return false
			}
		}
	}
	return true
}

// maxDFSDepth walks g with its own plain, unshared iterative DFS to
// measure the deepest simulated recursion reached, independent of
// either engine's internal bookkeeping.
func maxDFSDepth(g *graph.Graph) int {
	n := g.NumVertices()
	if n == 0 {
		return 0
	}
	visited := make([]bool, n)
	maxDepth := 0

	type frame struct {
		v         int
		neighbors []int
		pos       int
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		nbs, err := g.Neighbors(start)
		if err != nil {
			continue
		}
		visited[start] = true
		stack := []frame{{v: start, neighbors: nbs}}
		if len(stack) > maxDepth {
			maxDepth = len(stack)
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.pos < len(top.neighbors) {
				w := top.neighbors[top.pos]
				top.pos++
				if visited[w] {
					continue
				}
				wNbs, werr := g.Neighbors(w)
				if werr != nil {
					continue
				}
				visited[w] = true
				stack = append(stack, frame{v: w, neighbors: wNbs})
				if len(stack) > maxDepth {
					maxDepth = len(stack)
				}
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	return maxDepth
}
