package msm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/markov/matrix"
	"github.com/katalvlaran/markov/spectral"
)

// leftEigen memoizes the left eigen-decomposition (eigenvectors of the
// transposed transition matrix), sorted by descending real eigenvalue part.
func (m *Model) leftEigen() (*spectral.Decomposition, error) {
	m.leftOnce.Do(func() {
		m.leftVal, m.leftErr = spectral.DecomposeLeft(m.t.Dense())
	})

	return m.leftVal, m.leftErr
}

// rightEigen memoizes the right eigen-decomposition of the transition matrix.
func (m *Model) rightEigen() (*spectral.Decomposition, error) {
	m.rightOnce.Do(func() {
		m.rightVal, m.rightErr = spectral.Decompose(m.t.Dense())
	})

	return m.rightVal, m.rightErr
}

// Eigenvalues returns all eigenvalues of the transition matrix, sorted by
// descending real part. Eigenvalues may be complex.
func (m *Model) Eigenvalues() ([]complex128, error) {
	dec, err := m.leftEigen()
	if err != nil {
		return nil, err
	}

	return dec.Values(), nil
}

// LeftEigenvectors returns the k left eigenvectors of the largest
// eigenvalues, matching the order of Eigenvalues. k must lie in
// [1, NumStates]; pass NumStates for all.
func (m *Model) LeftEigenvectors(k int) ([][]complex128, error) {
	return m.eigenvectors(k, m.leftEigen)
}

// RightEigenvectors returns the k right eigenvectors of the largest
// eigenvalues, matching the order of Eigenvalues.
func (m *Model) RightEigenvectors(k int) ([][]complex128, error) {
	return m.eigenvectors(k, m.rightEigen)
}

func (m *Model) eigenvectors(k int, side func() (*spectral.Decomposition, error)) ([][]complex128, error) {
	if k < 1 || k > m.t.N() {
		return nil, fmt.Errorf("eigenvectors: k=%d, n=%d: %w", k, m.t.N(), ErrEigenvectorCount)
	}
	dec, err := side()
	if err != nil {
		return nil, err
	}
	out := make([][]complex128, k)
	for i := 0; i < k; i++ {
		out[i] = dec.Vector(i)
	}

	return out, nil
}

// StationaryDistribution returns the unique invariant probability vector of
// an irreducible chain, in state order, summing to 1.
// Returns ErrNotIrreducible for a reducible chain.
func (m *Model) StationaryDistribution() ([]float64, error) {
	m.piOnce.Do(func() {
		if !m.IsIrreducible() {
			m.piErr = fmt.Errorf("StationaryDistribution: %w", ErrNotIrreducible)

			return
		}
		dec, err := m.leftEigen()
		if err != nil {
			m.piErr = err

			return
		}
		pi, err := spectral.Stationary(dec)
		if err != nil {
			// Irreducibility was just verified, so a missing unit eigenvalue
			// is an internal inconsistency, not a caller error.
			panic(fmt.Sprintf("msm: %v on an irreducible chain", err))
		}
		m.piVal = pi
	})
	if m.piErr != nil {
		return nil, m.piErr
	}

	return append([]float64(nil), m.piVal...), nil
}

// Period returns the period of an irreducible chain: the number of
// eigenvalues of unit modulus. Always ≥ 1.
// Returns ErrNotIrreducible for a reducible chain.
func (m *Model) Period() (int, error) {
	if !m.IsIrreducible() {
		return 0, fmt.Errorf("Period: %w", ErrNotIrreducible)
	}
	dec, err := m.leftEigen()
	if err != nil {
		return 0, err
	}
	p := spectral.Period(dec)
	if p < 1 {
		panic("msm: stochastic matrix without a unit-modulus eigenvalue")
	}

	return p, nil
}

// ImpliedTimescales maps every non-dominant eigenvalue λ to the relaxation
// timescale −lagtime/ln|λ|, in eigenvalue order. Unit-modulus eigenvalues
// beyond the dominant one (periodic chains) are not guarded and produce
// infinite timescales.
func (m *Model) ImpliedTimescales() ([]float64, error) {
	dec, err := m.leftEigen()
	if err != nil {
		return nil, err
	}

	return spectral.Timescales(dec.Values(), m.lagtime), nil
}

// BackwardTransitionMatrix returns the time-reversed chain
// B[a,b] = π[b]·T[b,a]/π[a]. Requires irreducibility (π must exist);
// the failure propagates from StationaryDistribution.
func (m *Model) BackwardTransitionMatrix() (*matrix.Stochastic, error) {
	m.bwdOnce.Do(func() {
		pi, err := m.StationaryDistribution()
		if err != nil {
			m.bwdErr = err

			return
		}
		m.bwdVal, m.bwdErr = m.t.Reverse(pi)
	})

	return m.bwdVal, m.bwdErr
}

// IsReversible reports whether the chain satisfies detailed balance:
// the backward transition matrix equals the forward one element-wise within
// tolerance. Requires irreducibility.
func (m *Model) IsReversible() (bool, error) {
	bwd, err := m.BackwardTransitionMatrix()
	if err != nil {
		return false, err
	}
	n := m.t.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f, b := m.t.At(i, j), bwd.At(i, j)
			if math.Abs(b-f) > spectral.RealAbsTol+spectral.RealRelTol*math.Abs(f) {
				return false, nil
			}
		}
	}

	return true, nil
}
