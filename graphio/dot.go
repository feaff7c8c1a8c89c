// File: dot.go
// Role: Write-only DOT output: standard "digraph G { ... }" with one
//       statement per vertex and one per edge.
package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/TechieQuokka/sccgraph/graph"
)

// WriteDOT writes g to w as a Graphviz DOT digraph, suitable for
// visualization tools. This format is write-only: there is no
// corresponding ReadDOT.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return &graph.Error{Kind: graph.NullPointer, Op: "graphio.WriteDOT", Msg: "nil graph"}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "digraph G {"); err != nil {
		return err
	}
	for v := 0; v < g.NumVertices(); v++ {
		if _, err := fmt.Fprintf(bw, "\t%d [label=\"%d\"];\n", v, v); err != nil {
			return err
		}
	}

	it := g.NewEdgeIterator()
	for {
		src, dst, ok := it.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(bw, "\t%d -> %d;\n", src, dst); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}

	return bw.Flush()
}
