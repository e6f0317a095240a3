package msm_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/markov/chains"
	"github.com/katalvlaran/markov/matrix"
	"github.com/katalvlaran/markov/msm"
)

// normalize scales every row to sum 1, so fixtures can be written as weights.
func normalize(rows [][]float64) [][]float64 {
	for i, row := range rows {
		sum := floats.Sum(row)
		for j := range row {
			rows[i][j] = row[j] / sum
		}
	}

	return rows
}

// mustModel builds a model over default labels or fails the test.
func mustModel(t *testing.T, rows [][]float64, opts ...msm.Option) *msm.Model {
	t.Helper()
	s, err := matrix.New(rows)
	require.NoError(t, err)
	m, err := msm.New(s, opts...)
	require.NoError(t, err)

	return m
}

// randomStochastic returns a seeded strictly positive stochastic matrix, the
// all-entries-positive analogue of drawing rand(n,n)+0.001 and normalizing.
func randomStochastic(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64() + 0.001
		}
	}

	return normalize(rows)
}

// reducibleFixture is the 4-state chain whose transition graph splits into
// the open class {a} and the closed class {b,c,d}.
func reducibleFixture(t *testing.T) *msm.Model {
	t.Helper()
	s, err := matrix.New([][]float64{
		{0.4, 0.2, 0.2, 0.2},
		{0, 0.4, 0.5, 0.1},
		{0, 0.1, 0.7, 0.2},
		{0, 0.6, 0.1, 0.3},
	}, matrix.WithLabels([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)
	m, err := msm.New(s)
	require.NoError(t, err)

	return m
}

func TestNew_NilMatrix(t *testing.T) {
	m, err := msm.New(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, msm.ErrNilMatrix)
	assert.ErrorIs(t, err, msm.ErrInvalidValue)
}

func TestWithLagtime(t *testing.T) {
	m := mustModel(t, randomStochastic(3, 1), msm.WithLagtime(5))
	assert.Equal(t, 5, m.Lagtime())
	assert.Panics(t, func() { msm.WithLagtime(0) })
}

func TestStates_DefaultLabels(t *testing.T) {
	m := mustModel(t, randomStochastic(3, 2))
	assert.Equal(t, []string{"0", "1", "2"}, m.States())
	assert.Equal(t, 3, m.NumStates())
}

func TestStationaryDistribution_Invariant(t *testing.T) {
	m := mustModel(t, randomStochastic(4, 3))

	pi, err := m.StationaryDistribution()
	require.NoError(t, err)
	assert.InDelta(t, 1, floats.Sum(pi), 1e-6)

	// πᵗT = πᵗ.
	tm := m.TransitionMatrix()
	for j := 0; j < 4; j++ {
		col := 0.0
		for i := 0; i < 4; i++ {
			col += pi[i] * tm.At(i, j)
		}
		assert.InDelta(t, pi[j], col, 1e-6, "component %d", j)
	}
}

func TestStationaryDistribution_PeriodicCycle(t *testing.T) {
	m, err := msm.New(chains.Cycle(3))
	require.NoError(t, err)

	pi, err := m.StationaryDistribution()
	require.NoError(t, err)
	for i, p := range pi {
		assert.InDelta(t, 1.0/3, p, 1e-9, "pi[%d]", i)
	}

	period, err := m.Period()
	require.NoError(t, err)
	assert.Equal(t, 3, period)
	assert.False(t, m.IsAperiodic())
}

func TestStationaryDistribution_IdentityFails(t *testing.T) {
	m := mustModel(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})

	_, err := m.StationaryDistribution()
	assert.ErrorIs(t, err, msm.ErrNotIrreducible)
	assert.ErrorIs(t, err, msm.ErrInvalidOperation)

	_, err = m.Period()
	assert.ErrorIs(t, err, msm.ErrNotIrreducible)
}

func TestCommunicationClasses(t *testing.T) {
	m := reducibleFixture(t)

	classes := m.CommunicationClasses()
	require.Len(t, classes, 2)

	// Sorted by descending size: the closed triple first, the open {a} last.
	assert.Equal(t, []string{"b", "c", "d"}, classes[0].States)
	assert.True(t, classes[0].Closed)
	assert.Equal(t, 3, classes[0].Size())

	assert.Equal(t, []string{"a"}, classes[1].States)
	assert.False(t, classes[1].Closed)

	assert.False(t, m.IsIrreducible())
}

func TestCommunicationClasses_Irreducible(t *testing.T) {
	m, err := msm.New(chains.LazyUniform(5, 0.5))
	require.NoError(t, err)
	assert.True(t, m.IsIrreducible())
	assert.Len(t, m.CommunicationClasses(), 1)
}

func TestRestriction(t *testing.T) {
	m := reducibleFixture(t)
	classes := m.CommunicationClasses()

	sub, err := m.Restriction(classes[0])
	require.NoError(t, err)

	want := [][]float64{
		{0.4, 0.5, 0.1},
		{0.1, 0.7, 0.2},
		{0.6, 0.1, 0.3},
	}
	st := sub.TransitionMatrix()
	assert.Equal(t, []string{"b", "c", "d"}, st.Labels())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], st.At(i, j), 1e-12, "(%d,%d)", i, j)
		}
	}

	// The restricted chain is irreducible, so its spectrum is available.
	assert.True(t, sub.IsIrreducible())
	_, err = sub.StationaryDistribution()
	assert.NoError(t, err)
}

func TestRestriction_OpenClassRejected(t *testing.T) {
	m := reducibleFixture(t)
	classes := m.CommunicationClasses()

	_, err := m.Restriction(classes[1])
	assert.ErrorIs(t, err, msm.ErrClassNotClosed)
	assert.ErrorIs(t, err, msm.ErrInvalidValue)
}

func TestRestriction_HandMadeClass(t *testing.T) {
	m := reducibleFixture(t)

	sub, err := m.Restriction(msm.CommunicationClass{
		States: []string{"b", "c", "d"},
		Closed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, sub.States())

	_, err = m.Restriction(msm.CommunicationClass{States: []string{"z"}, Closed: true})
	assert.ErrorIs(t, err, msm.ErrUnknownState)
}

func TestEigenvalues_SortedDescending(t *testing.T) {
	m := mustModel(t, randomStochastic(5, 4))

	values, err := m.Eigenvalues()
	require.NoError(t, err)
	require.Len(t, values, 5)
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, real(values[i-1]), real(values[i]))
	}
	// The dominant eigenvalue of a stochastic matrix is 1.
	assert.InDelta(t, 0, cmplx.Abs(values[0]-1), 1e-9)
}

func TestEigenvectors_CountValidation(t *testing.T) {
	m := mustModel(t, randomStochastic(3, 5))

	vecs, err := m.LeftEigenvectors(2)
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
	assert.Len(t, vecs[0], 3)

	_, err = m.RightEigenvectors(0)
	assert.ErrorIs(t, err, msm.ErrEigenvectorCount)
	_, err = m.LeftEigenvectors(4)
	assert.ErrorIs(t, err, msm.ErrEigenvectorCount)
	assert.ErrorIs(t, err, msm.ErrInvalidValue)
}

func TestImpliedTimescales_LazyUniform(t *testing.T) {
	// T = (stay−move)·I + move·J has eigenvalues 1 and stay−move (twice),
	// so both timescales are −lag/ln(stay−move).
	const stay = 0.7
	move := (1 - stay) / 2
	m, err := msm.New(chains.LazyUniform(3, stay), msm.WithLagtime(3))
	require.NoError(t, err)

	ts, err := m.ImpliedTimescales()
	require.NoError(t, err)
	require.Len(t, ts, 2)

	want := -3.0 / math.Log(stay-move)
	assert.InDelta(t, want, ts[0], 1e-9)
	assert.InDelta(t, want, ts[1], 1e-9)
}

func TestIsReversible_BirthDeath(t *testing.T) {
	m := mustModel(t, [][]float64{
		{0.9, 0.1, 0, 0},
		{0.1, 0.89, 0.01, 0},
		{0, 0.01, 0.79, 0.2},
		{0, 0, 0.2, 0.8},
	})

	reversible, err := m.IsReversible()
	require.NoError(t, err)
	assert.True(t, reversible)
}

func TestIsReversible_CyclicPermutation(t *testing.T) {
	m, err := msm.New(chains.Cycle(3))
	require.NoError(t, err)

	reversible, err := m.IsReversible()
	require.NoError(t, err)
	assert.False(t, reversible)
}

func TestIsReversible_ReducibleFails(t *testing.T) {
	m := reducibleFixture(t)
	_, err := m.IsReversible()
	assert.ErrorIs(t, err, msm.ErrNotIrreducible)
}

func TestBackwardTransitionMatrix_EqualForwardWhenReversible(t *testing.T) {
	m, err := msm.New(chains.BirthDeath(4, 0.2, 0.1))
	require.NoError(t, err)

	bwd, err := m.BackwardTransitionMatrix()
	require.NoError(t, err)
	fwd := m.TransitionMatrix()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, fwd.At(i, j), bwd.At(i, j), 1e-8, "(%d,%d)", i, j)
		}
	}
}
