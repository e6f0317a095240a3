package msm

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markov/matrix"
)

// ForwardCommittors returns, per state, the probability of reaching B before
// A. States in A map to 0, states in B map to 1; the remaining states solve
// the linear system (T−I)_{C,C}·x = −(T−I)_{C,B}·1.
// A and B must be disjoint sets of known state labels.
func (m *Model) ForwardCommittors(A, B []string) ([]float64, error) {
	a, b, err := m.resolveSets(A, B)
	if err != nil {
		return nil, err
	}

	return committors(a, b, m.t), nil
}

// BackwardCommittors returns, per state, the probability that a trajectory
// arriving at the state last visited A rather than B: the forward committor
// from B to A under the time-reversed chain. States in B map to 0, states in
// A map to 1. Requires irreducibility (the backward matrix needs π).
func (m *Model) BackwardCommittors(A, B []string) ([]float64, error) {
	a, b, err := m.resolveSets(A, B)
	if err != nil {
		return nil, err
	}
	bwd, err := m.BackwardTransitionMatrix()
	if err != nil {
		return nil, err
	}

	return committors(b, a, bwd), nil
}

// ProbabilityCurrent returns the reactive flux f[i][j] = π[i]·q⁻[i]·T[i,j]·q⁺[j]
// for every ordered pair i≠j; the diagonal is zero.
func (m *Model) ProbabilityCurrent(A, B []string) ([][]float64, error) {
	fl, err := m.flux(A, B)
	if err != nil {
		return nil, err
	}

	return fl.current, nil
}

// EffectiveProbabilityCurrent returns the net reactive flux
// f⁺[i][j] = max(0, f[i][j] − f[j][i]).
func (m *Model) EffectiveProbabilityCurrent(A, B []string) ([][]float64, error) {
	fl, err := m.flux(A, B)
	if err != nil {
		return nil, err
	}
	n := len(fl.current)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if net := fl.current[i][j] - fl.current[j][i]; net > 0 {
				out[i][j] = net
			}
		}
	}

	return out, nil
}

// TransitionRate returns the mean reactive flux from A to B per unit time:
// the total probability current leaving A divided by π·q⁻.
func (m *Model) TransitionRate(A, B []string) (float64, error) {
	fl, err := m.flux(A, B)
	if err != nil {
		return 0, err
	}

	outflow := 0.0
	for _, i := range fl.a {
		outflow += floats.Sum(fl.current[i])
	}

	return outflow / floats.Dot(fl.pi, fl.qminus), nil
}

// MeanFirstPassageTime returns the reciprocal of TransitionRate.
func (m *Model) MeanFirstPassageTime(A, B []string) (float64, error) {
	rate, err := m.TransitionRate(A, B)
	if err != nil {
		return 0, err
	}

	return 1 / rate, nil
}

// flux bundles the TPT ingredients shared by the current and rate accessors,
// so each public call resolves committors exactly once.
type fluxContext struct {
	a, b    []int
	pi      []float64
	qplus   []float64
	qminus  []float64
	current [][]float64
}

func (m *Model) flux(A, B []string) (*fluxContext, error) {
	a, b, err := m.resolveSets(A, B)
	if err != nil {
		return nil, err
	}
	pi, err := m.StationaryDistribution()
	if err != nil {
		return nil, err
	}
	bwd, err := m.BackwardTransitionMatrix()
	if err != nil {
		return nil, err
	}

	qplus := committors(a, b, m.t)
	qminus := committors(b, a, bwd)

	n := m.t.N()
	current := make([][]float64, n)
	for i := 0; i < n; i++ {
		current[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			current[i][j] = pi[i] * qminus[i] * m.t.At(i, j) * qplus[j]
		}
	}

	return &fluxContext{a: a, b: b, pi: pi, qplus: qplus, qminus: qminus, current: current}, nil
}

// resolveSets translates the label sets A and B into deduplicated ascending
// index sets and enforces disjointness.
func (m *Model) resolveSets(A, B []string) ([]int, []int, error) {
	a, err := m.toIndices(A)
	if err != nil {
		return nil, nil, err
	}
	b, err := m.toIndices(B)
	if err != nil {
		return nil, nil, err
	}
	inA := make(map[int]bool, len(a))
	for _, i := range a {
		inA[i] = true
	}
	for _, i := range b {
		if inA[i] {
			return nil, nil, fmt.Errorf("state %q: %w", m.t.Label(i), ErrSetsOverlap)
		}
	}

	return a, b, nil
}

func (m *Model) toIndices(labels []string) ([]int, error) {
	seen := make(map[int]bool, len(labels))
	out := make([]int, 0, len(labels))
	for _, label := range labels {
		i, ok := m.t.Index(label)
		if !ok {
			return nil, fmt.Errorf("%q: %w", label, ErrUnknownState)
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)

	return out, nil
}

// committors solves the committor equation under propagator t: states in
// zero map to 0, states in one map to 1, and the unsettled states C solve
// (T−I)_{C,C}·x = −(T−I)_{C,one}·1. With C empty no solve is needed.
//
// The system is solved in real arithmetic; a singular system cannot occur for
// a well-posed problem and panics as an internal error.
func committors(zero, one []int, t *matrix.Stochastic) []float64 {
	n := t.N()
	settled := make(map[int]bool, len(zero)+len(one))
	result := make([]float64, n)
	for _, i := range zero {
		settled[i] = true
	}
	for _, i := range one {
		settled[i] = true
		result[i] = 1
	}

	unsettled := make([]int, 0, n-len(settled))
	for i := 0; i < n; i++ {
		if !settled[i] {
			unsettled = append(unsettled, i)
		}
	}
	if len(unsettled) == 0 {
		return result
	}

	// Assemble (T−I) restricted to C×C and the negated row sums over C×one.
	// The identity part vanishes on C×one because C and one are disjoint.
	c := len(unsettled)
	lhs := mat.NewDense(c, c, nil)
	rhs := mat.NewVecDense(c, nil)
	for r, i := range unsettled {
		for col, j := range unsettled {
			v := t.At(i, j)
			if i == j {
				v--
			}
			lhs.Set(r, col, v)
		}
		d := 0.0
		for _, j := range one {
			d += t.At(i, j)
		}
		rhs.SetVec(r, -d)
	}

	var x mat.VecDense
	if err := x.SolveVec(lhs, rhs); err != nil {
		panic(fmt.Sprintf("msm: committor system is singular: %v", err))
	}
	for r, i := range unsettled {
		result[i] = x.AtVec(r)
	}

	return result
}
