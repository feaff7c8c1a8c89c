// Package scc is the top-level dispatcher: it picks between the tarjan
// and kosaraju engines using a deterministic, observable
// heuristic, exposes strong-connectivity and condensation queries built
// on top of either engine's result, and lets callers force a specific
// engine when they need to bypass the heuristic (e.g. for benchmarking).
package scc
