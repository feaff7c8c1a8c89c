// File: assertions.go
// Role: The concrete assertion suites behind each module selector.
package main

import (
	"errors"
	"strings"

	"github.com/TechieQuokka/sccgraph/graph"
	"github.com/TechieQuokka/sccgraph/graphio"
	"github.com/TechieQuokka/sccgraph/internal/arena"
	"github.com/TechieQuokka/sccgraph/kosaraju"
	"github.com/TechieQuokka/sccgraph/scc"
	"github.com/TechieQuokka/sccgraph/sccbench"
	"github.com/TechieQuokka/sccgraph/sccresult"
	"github.com/TechieQuokka/sccgraph/tarjan"
)

type assertion struct {
	name string
	run  func() error
}

func assertTrue(cond bool, msg string) error {
	if !cond {
		return errors.New(msg)
	}
	return nil
}

func twoCycleGraph() (*graph.Graph, error) {
	g, err := graph.Create(6)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 6; i++ {
		if _, err = g.AddVertex(); err != nil {
			return nil, err
		}
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

var suites = map[string][]assertion{
	"graph": {
		{"create and add vertices", func() error {
			g, err := graph.Create(2)
			if err != nil {
				return err
			}
			defer g.Destroy()
			for i := 0; i < 3; i++ {
				id, aerr := g.AddVertex()
				if aerr != nil {
					return aerr
				}
				if id != i {
					return errors.New("vertex ids must be dense and sequential")
				}
			}
			return assertTrue(g.NumVertices() == 3, "expected 3 vertices")
		}},
		{"add and remove edge", func() error {
			g, _ := graph.Create(2)
			defer g.Destroy()
			_, _ = g.AddVertex()
			_, _ = g.AddVertex()
			if err := g.AddEdge(0, 1); err != nil {
				return err
			}
			if !g.HasEdge(0, 1) {
				return errors.New("expected edge 0->1 to exist")
			}
			if err := g.RemoveEdge(0, 1); err != nil {
				return err
			}
			return assertTrue(!g.HasEdge(0, 1), "edge should be gone after removal")
		}},
		{"transpose reverses every edge", func() error {
			g, _ := graph.Create(2)
			defer g.Destroy()
			_, _ = g.AddVertex()
			_, _ = g.AddVertex()
			_ = g.AddEdge(0, 1)
			gt, err := graph.Transpose(g)
			if err != nil {
				return err
			}
			defer gt.Destroy()
			return assertTrue(gt.HasEdge(1, 0) && !gt.HasEdge(0, 1), "transpose must reverse edge direction")
		}},
	},
	"tarjan": {
		{"two joined cycles are two components", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			r, err := tarjan.Run(g)
			if err != nil {
				return err
			}
			return assertTrue(r.ComponentCount() == 2, "expected 2 components")
		}},
	},
	"kosaraju": {
		{"two joined cycles are two components", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			r, err := kosaraju.Run(g)
			if err != nil {
				return err
			}
			return assertTrue(r.ComponentCount() == 2, "expected 2 components")
		}},
	},
	"scc": {
		{"find delegates to recommended engine", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			r, err := scc.Find(g)
			if err != nil {
				return err
			}
			return assertTrue(r.ComponentCount() == 2, "expected 2 components")
		}},
		{"condensation is acyclic", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			r, err := scc.Find(g)
			if err != nil {
				return err
			}
			cond, err := scc.BuildCondensation(g, r)
			if err != nil {
				return err
			}
			defer cond.Destroy()
			connected, err := scc.IsStronglyConnected(cond)
			if err != nil {
				return err
			}
			return assertTrue(!connected, "condensation of a non-trivial graph must not be strongly connected")
		}},
	},
	"utils": {
		{"sccresult aggregates", func() error {
			r := sccresult.Build(6, [][]int{{5}, {2, 3, 4}, {0, 1}})
			if r.ComponentCount() != 3 {
				return errors.New("expected 3 components")
			}
			return assertTrue(r.LargestComponentSize() == 3, "expected largest component of size 3")
		}},
	},
	"memory": {
		{"arena pool alloc and reset", func() error {
			p, err := arena.Create(4096, 8)
			if err != nil {
				return err
			}
			defer p.Destroy()
			buf, err := p.Alloc(64)
			if err != nil {
				return err
			}
			if len(buf) != 64 {
				return errors.New("expected 64-byte allocation")
			}
			p.Reset()
			return assertTrue(p.UsedSize() == 0, "expected used size 0 after reset")
		}},
	},
	"io": {
		{"edge list round trip", func() error {
			r := strings.NewReader("0 1\n1 2\n2 0\n")
			g, err := graphio.ReadEdgeList(r)
			if err != nil {
				return err
			}
			defer g.Destroy()
			return assertTrue(g.NumVertices() == 3 && g.NumEdges() == 3, "expected 3 vertices and 3 edges")
		}},
	},
	"integration": {
		{"tarjan and kosaraju agree", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			tr, err := tarjan.Run(g)
			if err != nil {
				return err
			}
			kr, err := kosaraju.Run(g)
			if err != nil {
				return err
			}
			return assertTrue(tr.ComponentCount() == kr.ComponentCount(), "engines must agree on component count")
		}},
	},
	"performance": {
		{"benchmark record is internally consistent", func() error {
			g, err := twoCycleGraph()
			if err != nil {
				return err
			}
			defer g.Destroy()
			rec, err := sccbench.Run(g)
			if err != nil {
				return err
			}
			return assertTrue(rec.ResultsMatch, "both engines must produce the same partition")
		}},
	},
}
