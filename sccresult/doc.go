// Package sccresult holds the immutable-after-build container returned
// by tarjan.Run and kosaraju.Run: the partition of a graph's vertices
// into strongly connected components, a dense vertex->component map for
// O(1) lookup, and summary statistics.
//
// Results are built once, inside a single engine invocation, via Build
// (tarjan and kosaraju are the only intended callers, though the
// package layout requires Build to be exported); after that no
// exported mutator exists.
package sccresult
