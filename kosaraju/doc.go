// Package kosaraju implements Kosaraju's two-pass strongly-connected-
// components algorithm: a first DFS over g recording a finish-order
// stack, then a second DFS over the transpose graph,
// visited in reverse finish order, where each tree of the second DFS
// is one strongly connected component.
//
// Both passes reuse the same iterative, explicit-frame-stack DFS shape
// as the tarjan package, for the same reason: chain graphs hundreds of
// thousands of vertices deep must not recurse on the goroutine stack.
//
// Complexity: O(V + E) time (one transpose plus two linear DFS passes),
// O(V + E) additional space for the transpose graph and O(V) for the
// visited/finish-order/frame bookkeeping.
package kosaraju
