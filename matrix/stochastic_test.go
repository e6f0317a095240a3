package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/matrix"
)

// twoState is a minimal valid fixture used across tests.
func twoState(t *testing.T) *matrix.Stochastic {
	t.Helper()
	s, err := matrix.New([][]float64{
		{0.9, 0.1},
		{0.4, 0.6},
	})
	require.NoError(t, err)

	return s
}

func TestNew_Valid(t *testing.T) {
	s := twoState(t)
	assert.Equal(t, 2, s.N())
	assert.Equal(t, 0.1, s.At(0, 1))
	assert.Equal(t, []string{"0", "1"}, s.Labels())
}

func TestNew_EmptyInput(t *testing.T) {
	_, err := matrix.New(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_RaggedRows(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.5},
		{1},
	})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_NonSquare(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.25, 0.25},
		{0.5, 0.25, 0.25},
	})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNew_EntryOutOfRange(t *testing.T) {
	_, err := matrix.New([][]float64{
		{1.5, -0.5},
		{0.5, 0.5},
	})
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)
}

func TestNew_RowSumOff(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.4},
		{0.5, 0.5},
	})
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)
}

func TestNew_RowSumWithinEpsilon(t *testing.T) {
	s, err := matrix.New([][]float64{
		{0.5, 0.5 + 1e-10},
		{0.5, 0.5},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, s.N())
}

func TestNew_CustomEpsilonRejects(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.5 + 1e-10},
		{0.5, 0.5},
	}, matrix.WithEpsilon(1e-12))
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

func TestNew_LabelCountMismatch(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.5},
		{0.5, 0.5},
	}, matrix.WithLabels([]string{"only"}))
	assert.ErrorIs(t, err, matrix.ErrLabelMismatch)
}

func TestNew_DuplicateLabels(t *testing.T) {
	_, err := matrix.New([][]float64{
		{0.5, 0.5},
		{0.5, 0.5},
	}, matrix.WithLabels([]string{"x", "x"}))
	assert.ErrorIs(t, err, matrix.ErrLabelMismatch)
}

func TestLabelIndexRoundtrip(t *testing.T) {
	s, err := matrix.New([][]float64{
		{0.5, 0.5},
		{0.5, 0.5},
	}, matrix.WithLabels([]string{"up", "down"}))
	require.NoError(t, err)

	i, ok := s.Index("down")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "down", s.Label(1))

	_, ok = s.Index("missing")
	assert.False(t, ok)
}

func TestRow_CopyAndBounds(t *testing.T) {
	s := twoState(t)

	row, err := s.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.1}, row)

	row[0] = 42 // mutating the copy must not reach the matrix
	assert.Equal(t, 0.9, s.At(0, 0))

	_, err = s.Row(7)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestHasEdge(t *testing.T) {
	s, err := matrix.New([][]float64{
		{1, 0},
		{0.5, 0.5},
	})
	require.NoError(t, err)
	assert.True(t, s.HasEdge(0, 0))
	assert.False(t, s.HasEdge(0, 1))
	assert.True(t, s.HasEdge(1, 0))
}

func TestSubmatrix_ClosedBlock(t *testing.T) {
	s, err := matrix.New([][]float64{
		{0.4, 0.2, 0.2, 0.2},
		{0, 0.4, 0.5, 0.1},
		{0, 0.1, 0.7, 0.2},
		{0, 0.6, 0.1, 0.3},
	}, matrix.WithLabels([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)

	sub, err := s.Submatrix([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, sub.Labels())
	assert.Equal(t, 0.5, sub.At(0, 1))
	assert.Equal(t, 0.6, sub.At(2, 0))
}

func TestSubmatrix_LeakingMass(t *testing.T) {
	s := twoState(t)
	// {0} is not closed (0 -> 1 has mass), so the 1x1 block cannot be stochastic.
	_, err := s.Submatrix([]int{0})
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)
}

func TestSubmatrix_BadSelections(t *testing.T) {
	s := twoState(t)

	_, err := s.Submatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = s.Submatrix([]int{0, 0})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = s.Submatrix([]int{5})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestReverse_DetailedBalance(t *testing.T) {
	// Symmetric matrices are reversible w.r.t. the uniform distribution, so
	// the reversal must reproduce the original chain.
	s, err := matrix.New([][]float64{
		{0.8, 0.15, 0.05},
		{0.15, 0.7, 0.15},
		{0.05, 0.15, 0.8},
	})
	require.NoError(t, err)

	third := 1.0 / 3
	rev, err := s.Reverse([]float64{third, third, third})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, s.At(i, j), rev.At(i, j), 1e-12)
		}
	}
}

func TestReverse_BadDistribution(t *testing.T) {
	s := twoState(t)

	_, err := s.Reverse([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = s.Reverse([]float64{1, 0})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_Copy(t *testing.T) {
	s := twoState(t)
	d := s.Dense()
	d.Set(0, 0, 0) // the copy must not alias the matrix
	assert.Equal(t, 0.9, s.At(0, 0))
}
