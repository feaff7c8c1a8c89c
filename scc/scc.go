// File: scc.go
// Role: Algorithm selection, Find dispatch, strong-connectivity query,
//       and condensation construction.
package scc

import (
	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/kosaraju"
	"github.com/TechieQuokka/sccgraph/sccresult"
	"github.com/TechieQuokka/sccgraph/tarjan"
)

// Algorithm names one of the two SCC engines. The zero value is not a
// valid selection; use RecommendAlgorithm or one of the named constants.
type Algorithm int

const (
	// Tarjan selects the single-pass engine.
	Tarjan Algorithm = iota + 1
	// Kosaraju selects the two-pass engine.
	Kosaraju
)

// String renders the algorithm name, for logging and CLI output.
func (a Algorithm) String() string {
	switch a {
	case Tarjan:
		return "tarjan"
	case Kosaraju:
		return "kosaraju"
	default:
		return "unknown"
	}
}

// densityCutoff is the calibration point above which Kosaraju is
// preferred over Tarjan on large graphs. Preserved verbatim; treat as
// tunable rather than load-bearing.
const densityCutoff = 0.1

// largeGraphThreshold is the vertex count at or above which density
// starts to influence the recommendation at all.
const largeGraphThreshold = 1000

// RecommendAlgorithm deterministically picks an engine for g, based
// only on vertex count and edge density:
//
//   - num_vertices == 0 or num_vertices < 1000 → Tarjan.
//   - otherwise, density = num_edges / num_vertices²; > 0.1 → Kosaraju,
//     else Tarjan.
//
// Returns an error only if g is nil.
func RecommendAlgorithm(g *graph.Graph) (Algorithm, error) {
	if g == nil {
		return 0, &graph.Error{Kind: graph.NullPointer, Op: "scc.RecommendAlgorithm", Msg: "nil graph"}
	}
	n := g.NumVertices()
	if n == 0 || n < largeGraphThreshold {
		return Tarjan, nil
	}
	density := float64(g.NumEdges()) / (float64(n) * float64(n))
	if density > densityCutoff {
		return Kosaraju, nil
	}
	return Tarjan, nil
}

// Find computes g's strongly connected components, delegating to the
// engine RecommendAlgorithm selects for g.
func Find(g *graph.Graph) (*sccresult.Result, error) {
	algo, err := RecommendAlgorithm(g)
	if err != nil {
		return nil, err
	}
	return FindWith(g, algo)
}

// FindWith runs a caller-chosen engine directly, bypassing the
// heuristic. Useful for benchmarking and for tests asserting algorithm
// equivalence.
func FindWith(g *graph.Graph, algo Algorithm) (*sccresult.Result, error) {
	switch algo {
	case Tarjan:
		return tarjan.Run(g)
	case Kosaraju:
		return kosaraju.Run(g)
	default:
		return nil, &graph.Error{Kind: graph.InvalidParameter, Op: "scc.FindWith", Msg: "unknown algorithm"}
	}
}

// IsStronglyConnected reports whether g is a single strongly connected
// component. An empty graph is well-defined as false, not an error.
func IsStronglyConnected(g *graph.Graph) (bool, error) {
	if g != nil && g.NumVertices() == 0 {
		return false, nil
	}
	r, err := Find(g)
	if err != nil {
		return false, err
	}
	return r.ComponentCount() == 1, nil
}

// BuildCondensation returns the condensation of g given its already-
// computed SCC result: one vertex per component, and at most one edge
// a->b for each pair of components connected by at least one original
// cross-component edge. The result is guaranteed acyclic.
func BuildCondensation(g *graph.Graph, result *sccresult.Result) (*graph.Graph, error) {
	if g == nil {
		return nil, &graph.Error{Kind: graph.NullPointer, Op: "scc.BuildCondensation", Msg: "nil graph"}
	}
	if result == nil {
		return nil, &graph.Error{Kind: graph.NullPointer, Op: "scc.BuildCondensation", Msg: "nil result"}
	}

	k := result.ComponentCount()
	out, err := graph.Create(k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
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
		a, err := result.VertexComponent(src)
		if err != nil {
			return nil, err
		}
		b, err := result.VertexComponent(dst)
		if err != nil {
			return nil, err
		}
		if a == b {
			continue
		}
		if out.HasEdge(a, b) {
			continue
		}
		if err = out.AddEdge(a, b); err != nil {
			return nil, err
		}
	}

	return out, nil
}
