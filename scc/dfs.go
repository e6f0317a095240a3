package scc

// frame is one entry of the explicit DFS stack: the vertex being explored and
// the next neighbor index to scan. Keeping the scan cursor in the frame makes
// the iterative traversal produce exactly the post-order of the classic
// recursive formulation (neighbors scanned in ascending index order).
type frame struct {
	vertex int // vertex under exploration
	next   int // next neighbor candidate to examine
}

// PostOrder performs a depth-first traversal of adj from root and returns the
// vertices reached, in post-order (finish order, root last).
//
// The visited slice is the caller's flag set: vertices whose flag is already
// set are skipped, and the flag of every vertex reached by this call is set
// on return. This is what lets Kosaraju's algorithm share one flag set across
// a whole forest of traversals.
//
// The traversal uses an explicit stack, so arbitrarily deep graphs cannot
// overflow the call stack.
// Complexity: O(V²) time on dense adjacency, O(V) memory.
func PostOrder(adj Adjacency, root int, visited []bool) ([]int, error) {
	// 1. Validate inputs.
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.N()
	if root < 0 || root >= n {
		return nil, ErrRootOutOfRange
	}
	if len(visited) != n {
		return nil, ErrFlagsLength
	}

	// 2. Iterative DFS with per-frame neighbor cursors.
	order := make([]int, 0, n)
	stack := make([]frame, 0, n)
	visited[root] = true
	stack = append(stack, frame{vertex: root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Scan for the next unvisited neighbor of the top frame.
		descended := false
		for j := top.next; j < n; j++ {
			if !adj.HasEdge(top.vertex, j) || visited[j] {
				continue
			}
			top.next = j + 1 // resume after j when we return to this frame
			visited[j] = true
			stack = append(stack, frame{vertex: j})
			descended = true

			break
		}

		// No neighbors left: the vertex is finished.
		if !descended {
			order = append(order, top.vertex)
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}
