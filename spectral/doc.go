// Package spectral wraps gonum's general (complex) eigen-decomposition for
// stochastic matrices and derives the spectral quantities of a Markov chain:
// stationary distribution, period, and implied timescales.
//
// A Decomposition is an ordered bundle of (eigenvalue, eigenvector) pairs
// sorted by descending real part of the eigenvalue; Value(i) always matches
// Vector(i). For left eigenvectors, decompose the transpose (DecomposeLeft).
//
// Physically real quantities derived from a complex decomposition (the
// stationary distribution) are asserted real within tolerance; a violation is
// a definitional bug in the input or the backend and panics rather than
// returning a typed error.
//
// Errors:
//   - ErrEigenFailed         backend failed to converge
//   - ErrNoUnitEigenvalue    no eigenvalue ≈ 1 found (reducible or invalid input)
package spectral
