package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Stationary extracts the stationary distribution from a left
// eigen-decomposition of an irreducible chain: the eigenvector of the
// eigenvalue closest to 1 (unique up to scale by Perron–Frobenius), asserted
// real within tolerance and normalized to sum 1.
//
// The decomposition must come from DecomposeLeft of the transition matrix.
// Returns ErrNoUnitEigenvalue when no eigenvalue lies within UnitTol of 1.
// Panics when the selected eigenvector has a non-negligible imaginary part;
// that never happens for a well-posed irreducible stochastic matrix and
// indicates a definitional bug, not a recoverable condition.
func Stationary(dec *Decomposition) ([]float64, error) {
	at := -1
	for i := 0; i < dec.Len(); i++ {
		if cmplx.Abs(dec.values[i]-1) <= UnitTol {
			at = i

			break
		}
	}
	if at < 0 {
		return nil, ErrNoUnitEigenvalue
	}

	pi := mustReal(dec.vectors[at])
	sum := floats.Sum(pi)
	if sum == 0 {
		panic("spectral: stationary eigenvector sums to zero")
	}
	floats.Scale(1/sum, pi)

	return pi, nil
}

// Period counts the eigenvalues on the unit circle (| |λ|−1 | ≤ UnitTol).
// For an irreducible chain this equals the period of the chain; a stochastic
// matrix always contributes at least λ=1, so the count is ≥ 1.
func Period(dec *Decomposition) int {
	count := 0
	for _, v := range dec.values {
		if math.Abs(cmplx.Abs(v)-1) <= UnitTol {
			count++
		}
	}

	return count
}

// Timescales maps every non-dominant eigenvalue to its implied timescale
// −lagtime / ln|λ|, in eigenvalue sort order. The dominant (first) eigenvalue
// is skipped. Further unit-modulus eigenvalues (periodic chains) are not
// guarded: ln|λ| = 0 there and the division yields an infinite timescale.
func Timescales(values []complex128, lagtime int) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i, v := range values[1:] {
		out[i] = -float64(lagtime) / math.Log(cmplx.Abs(v))
	}

	return out
}

// mustReal converts v to its real parts, panicking when any component's
// imaginary part exceeds RealAbsTol + RealRelTol·|real part|.
func mustReal(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		if math.Abs(imag(c)) > RealAbsTol+RealRelTol*math.Abs(real(c)) {
			panic(fmt.Sprintf("spectral: component %d = %v is not real within tolerance", i, c))
		}
		out[i] = real(c)
	}

	return out
}
