// Package matrix provides the labeled row-stochastic transition matrix that
// every analysis in this library consumes. A Stochastic value is validated
// once at construction (square shape, entries in [0,1], row sums ≈ 1 within a
// configurable epsilon, bijective state labels) and is immutable afterwards;
// derived matrices (time reversal, principal submatrices) are produced as new
// values, never by mutation.
//
// Key features:
//   - New(rows, opts...): fail-fast construction with sentinel errors
//   - WithLabels / WithEpsilon: functional options, documented defaults
//   - Label ↔ index bijection: algorithms run on dense integer indices,
//     labels appear only at the public boundary
//   - Reverse(pi): detailed-balance time reversal B[a,b] = π[b]·T[b,a]/π[a]
//   - Submatrix(indices): principal submatrix keeping the selected labels
//   - Dense(): copy-out into gonum's mat.Dense for spectral work
//
// Complexity:
//   - Construction and validation: O(n²) time, O(n²) memory.
//   - At/HasEdge/N and label lookups: O(1).
//
// Errors:
//   - ErrBadShape        empty or ragged input rows
//   - ErrNonSquare       row count differs from column count
//   - ErrNotStochastic   entry outside [0,1] or row sum off by more than eps
//   - ErrLabelMismatch   wrong label count or duplicate labels
//   - ErrOutOfRange      index outside [0,n) in a checked accessor
package matrix
