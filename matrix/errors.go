// Package matrix: sentinel error set.
// All construction and accessor failures return these sentinels (possibly
// wrapped with an operation tag via fmt.Errorf("Op: %w", err)); tests match
// them with errors.Is. Panics are reserved for programmer errors in private
// helpers.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the input has no rows or a ragged row
	// whose length differs from the row count of the first row.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare is returned when the row count differs from the column
	// count. Transition matrices must be square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotStochastic is returned when an entry lies outside [0,1] or a row
	// sum deviates from 1 by more than the configured epsilon.
	ErrNotStochastic = errors.New("matrix: matrix is not row-stochastic")

	// ErrLabelMismatch is returned when WithLabels supplies a label slice
	// whose length differs from the matrix dimension, or contains duplicates.
	ErrLabelMismatch = errors.New("matrix: state labels do not match matrix")

	// ErrOutOfRange is returned by checked accessors (Row, Submatrix) for an
	// index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
