// Package msm: sentinel error set. Two base kinds, with specific conditions
// wrapping one of them; match either level with errors.Is.

package msm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is the base kind for caller-supplied arguments that
	// violate a structural precondition. Detected eagerly.
	ErrInvalidValue = errors.New("msm: invalid value")

	// ErrInvalidOperation is the base kind for computations that are
	// mathematically undefined for the current chain. Detected lazily, when
	// the dependent quantity is first requested.
	ErrInvalidOperation = errors.New("msm: invalid operation")
)

var (
	// ErrNilMatrix is returned by New for a nil transition matrix.
	ErrNilMatrix = fmt.Errorf("%w: transition matrix is nil", ErrInvalidValue)

	// ErrUnknownState is returned when a state label does not exist in the
	// model.
	ErrUnknownState = fmt.Errorf("%w: unknown state label", ErrInvalidValue)

	// ErrSetsOverlap is returned when the committor source and target sets
	// share a state.
	ErrSetsOverlap = fmt.Errorf("%w: source and target sets must be disjoint", ErrInvalidValue)

	// ErrClassNotClosed is returned by Restriction for a communication class
	// with outgoing edges.
	ErrClassNotClosed = fmt.Errorf("%w: communication class is not closed", ErrInvalidValue)

	// ErrSetCount is returned when the requested number of metastable sets is
	// outside [1, number of states].
	ErrSetCount = fmt.Errorf("%w: metastable set count out of range", ErrInvalidValue)

	// ErrEigenvectorCount is returned when the requested number of
	// eigenvectors is outside [1, number of states].
	ErrEigenvectorCount = fmt.Errorf("%w: eigenvector count out of range", ErrInvalidValue)

	// ErrNotIrreducible marks quantities that require a single communication
	// class: stationary distribution, period, backward matrix, reversibility.
	ErrNotIrreducible = fmt.Errorf("%w: chain is reducible", ErrInvalidOperation)

	// ErrNotReversible marks PCCA on a chain that violates detailed balance.
	ErrNotReversible = fmt.Errorf("%w: chain is not reversible", ErrInvalidOperation)
)
