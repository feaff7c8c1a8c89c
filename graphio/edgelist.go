// File: edgelist.go
// Role: Edge-list format: one edge per line, "src dst", '#'-prefixed
//       comments, blank lines ignored, max observed id defines
//       num_vertices.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TechieQuokka/sccgraph/graph"
)

// ReadEdgeList parses r as an edge list and builds the corresponding
// Graph. Vertex ids are dense 0..max, where max is the largest id seen
// as either a source or a destination; vertices with no incident edges
// at all below that max still exist.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	type pair struct{ src, dst int }
	var pairs []pair
	maxID := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		pairs = append(pairs, pair{src, dst})
		if src > maxID {
			maxID = src
		}
		if dst > maxID {
			maxID = dst
		}
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
	for _, p := range pairs {
		if err = g.AddEdge(p.src, p.dst); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteEdgeList writes g to w as an edge list, one "src dst" pair per
// line in the graph's natural iteration order.
func WriteEdgeList(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return &graph.Error{Kind: graph.NullPointer, Op: "graphio.WriteEdgeList", Msg: "nil graph"}
	}

	bw := bufio.NewWriter(w)
	it := g.NewEdgeIterator()
	for {
		src, dst, ok := it.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", src, dst); err != nil {
			return err
		}
	}

	return bw.Flush()
}
