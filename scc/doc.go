// Package scc implements depth-first post-order traversal and Kosaraju's
// two-pass strongly-connected-components algorithm over dense directed
// adjacency structures, plus the closed-component test used to classify
// communication classes of a Markov chain.
//
// Key features:
//   - PostOrder(adj, root, visited): DFS finish order, root last, explicit
//     stack (no recursion, safe for deep graphs)
//   - StronglyConnected(adj): Kosaraju — combined post-order over adj, then
//     DFS over the transpose in reverse finish order; one component per
//     second-pass tree, in discovery order, partitioning all vertices
//   - IsClosed(component, adj): true iff no edge leaves the component
//
// The Adjacency interface is deliberately tiny (N, HasEdge) so that both
// matrix.Stochastic and ad-hoc test doubles plug in directly.
//
// Complexity:
//   - Time:   O(V²) per traversal on dense adjacency (neighbor scan is O(V)).
//   - Memory: O(V) for the stack, flags, and orderings.
//
// Errors:
//   - ErrNilAdjacency     adj is nil
//   - ErrRootOutOfRange   root outside [0, N)
//   - ErrFlagsLength      visited slice length differs from N
package scc
