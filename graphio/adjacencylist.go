// File: adjacencylist.go
// Role: Adjacency-list format: one source per line, first integer is
//       the source, remaining integers are destinations.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TechieQuokka/sccgraph/graph"
)

// ReadAdjacencyList parses r as an adjacency list and builds the
// corresponding Graph. Sources with no out-edges may be omitted from
// the input entirely; num_vertices is still the maximum id observed
// across both sources and destinations, plus one.
func ReadAdjacencyList(r io.Reader) (*graph.Graph, error) {
	type row struct {
		src  int
		dsts []int
	}
	var rows []row
	maxID := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if src > maxID {
			maxID = src
		}
		dsts := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			dst, derr := strconv.Atoi(f)
			if derr != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			dsts = append(dsts, dst)
			if dst > maxID {
				maxID = dst
			}
		}
		rows = append(rows, row{src: src, dsts: dsts})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	n := maxID + 1
	g, err := graph.Create(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if _, err = g.AddVertex(); err != nil {
			return nil, err
		}
	}
	for _, r := range rows {
		for _, dst := range r.dsts {
			if err = g.AddEdge(r.src, dst); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// WriteAdjacencyList writes g to w as an adjacency list, one line per
// vertex that has at least one out-edge, in vertex-id order.
func WriteAdjacencyList(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return &graph.Error{Kind: graph.NullPointer, Op: "graphio.WriteAdjacencyList", Msg: "nil graph"}
	}

	bw := bufio.NewWriter(w)
	for v := 0; v < g.NumVertices(); v++ {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		if len(nbs) == 0 {
			continue
		}
		if _, err = fmt.Fprintf(bw, "%d", v); err != nil {
			return err
		}
		for _, dst := range nbs {
			if _, err = fmt.Fprintf(bw, " %d", dst); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
