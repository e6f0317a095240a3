package scc

// StronglyConnected computes the strongly connected components of adj using
// Kosaraju's two-pass algorithm:
//
//  1. Run PostOrder from every unvisited vertex (ascending), accumulating one
//     combined finish ordering of the whole graph.
//  2. Walk that ordering in reverse; every unvisited vertex roots one more
//     PostOrder on the transposed graph, and the vertices it reaches form
//     exactly one strongly connected component.
//
// Components are returned in second-pass discovery order; every vertex
// appears in exactly one component, so the result partitions 0..N-1.
// Complexity: O(V²) time on dense adjacency, O(V) memory.
func StronglyConnected(adj Adjacency) ([][]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.N()

	// Pass 1: combined post-order over the original graph.
	finish := make([]int, 0, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		order, err := PostOrder(adj, v, visited)
		if err != nil {
			return nil, err
		}
		finish = append(finish, order...)
	}

	// Pass 2: reverse finish order over the transposed graph.
	rev := transposed{adj}
	for i := range visited {
		visited[i] = false
	}
	var components [][]int
	for i := n - 1; i >= 0; i-- {
		v := finish[i]
		if visited[v] {
			continue
		}
		component, err := PostOrder(rev, v, visited)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}

// IsClosed reports whether no edge leaves the component: there is no pair
// (a ∈ component, b ∉ component) with an edge a -> b.
// Complexity: O(|component|·V).
func IsClosed(component []int, adj Adjacency) bool {
	inside := make(map[int]bool, len(component))
	for _, v := range component {
		inside[v] = true
	}
	for _, a := range component {
		for b := 0; b < adj.N(); b++ {
			if !inside[b] && adj.HasEdge(a, b) {
				return false
			}
		}
	}

	return true
}
