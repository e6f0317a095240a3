// Package scc: adjacency contract and sentinel errors.

package scc

import "errors"

// Adjacency describes a dense directed graph over vertices 0..N()-1.
// HasEdge(i,j) reports a directed edge i -> j. Implementations must be
// read-only for the duration of a traversal.
type Adjacency interface {
	// N returns the number of vertices.
	N() int

	// HasEdge reports whether the directed edge i -> j exists.
	// Both arguments are in [0, N).
	HasEdge(i, j int) bool
}

var (
	// ErrNilAdjacency is returned when a nil Adjacency is passed in.
	ErrNilAdjacency = errors.New("scc: adjacency is nil")

	// ErrRootOutOfRange indicates that the requested root vertex does not
	// exist in the graph.
	ErrRootOutOfRange = errors.New("scc: root vertex out of range")

	// ErrFlagsLength indicates that the caller-supplied visited slice does
	// not have exactly N entries.
	ErrFlagsLength = errors.New("scc: visited flags length mismatch")
)

// transposed adapts an Adjacency to its edge-reversed graph.
// Used by the second Kosaraju pass.
type transposed struct {
	Adjacency
}

func (t transposed) HasEdge(i, j int) bool {
	return t.Adjacency.HasEdge(j, i)
}
