// Package tarjan implements Tarjan's single-pass strongly-connected-
// components algorithm: one DFS maintaining a discovery index, a
// lowlink, an explicit on-stack vertex stack, and an on-stack
// membership set.
//
// Key features:
//   - Run(g): a single DFS; emits components in reverse topological
//     order of the condensation (first emitted = a condensation sink).
//   - Iterative by construction: the DFS recursion is realized as an
//     explicit heap-resident frame stack of (vertex, neighbor cursor)
//     pairs rather than Go call-stack recursion, so chain graphs of
//     several hundred thousand vertices cannot overflow the goroutine
//     stack.
//
// Complexity: O(V + E) time, O(V) additional space for index/lowlink/
// on-stack plus the frame stack and the SCC stack.
package tarjan
