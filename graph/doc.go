// Package graph is the mutable directed-graph store underneath sccgraph.
//
// 🚀 What is sccgraph/graph?
//
//	A small, dependency-free digraph with:
//
//	  • Dense integer vertex ids (0..N), assigned in insertion order
//	  • Per-vertex singly linked out-edge lists (destination id only)
//	  • Doubling growth, transpose, copy, and an O(V+E) integrity check
//	  • An optional pluggable Arena collaborator for scratch buffers
//
// ✨ Why it looks the way it does
//
//   - Single-threaded     — no locks; see the package-level concurrency note below
//   - Deterministic       — edge order is reverse insertion order, iteration is restartable
//   - Pure Go             — no cgo, no third-party graph dependency
//
// Concurrency: a *Graph must not be mutated concurrently by multiple
// goroutines. Reading it (HasEdge, OutDegree, the edge iterator, or
// handing it to independent tarjan/kosaraju runs) from multiple
// goroutines at once is safe as long as every vertex id passed is in
// range: no read path changes the graph's structure, but OutDegree and
// Neighbors record an out-of-range id in the last-error slot.
// The "last error" slot described in package errors.go is therefore
// scoped to the *Graph instance, not to a process-wide thread-local:
// each Graph is the execution context for the calls made against it.
//
//	go get github.com/TechieQuokka/sccgraph/graph
package graph
