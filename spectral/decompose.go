package spectral

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEigenFailed indicates that the eigen backend did not converge.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")

	// ErrNoUnitEigenvalue indicates that no eigenvalue lies within UnitTol
	// of 1. Every stochastic matrix has eigenvalue 1, so this only fires on
	// invalid input or when the caller ignored an irreducibility check.
	ErrNoUnitEigenvalue = errors.New("spectral: no eigenvalue close to 1")
)

// Tolerances of the numeric policy. UnitTol bounds |λ-1| (and ||λ|-1|) for
// unit-eigenvalue detection; RealAbsTol/RealRelTol bound the imaginary part
// of components asserted to be real.
const (
	UnitTol    = 1e-8
	RealAbsTol = 1e-8
	RealRelTol = 1e-5
)

// Decomposition is an ordered eigenpair bundle: Value(i) corresponds to
// Vector(i), sorted by descending real part of the eigenvalue. Values and
// vectors may be complex even for real input.
type Decomposition struct {
	values  []complex128
	vectors [][]complex128 // vectors[i] has length n, one per eigenvalue
}

// Decompose computes the (right) eigen-decomposition of a and returns the
// pairs sorted by descending real part of the eigenvalue. The sort is stable,
// so backend order breaks ties deterministically.
func Decompose(a *mat.Dense) (*Decomposition, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}

	values := eig.Values(nil)
	n := len(values)
	var cv mat.CDense
	eig.VectorsTo(&cv)

	// Column i of cv is the eigenvector of values[i]; extract before sorting.
	d := &Decomposition{
		values:  values,
		vectors: make([][]complex128, n),
	}
	for i := 0; i < n; i++ {
		v := make([]complex128, n)
		for r := 0; r < n; r++ {
			v[r] = cv.At(r, i)
		}
		d.vectors[i] = v
	}

	d.sortByDescendingReal()

	return d, nil
}

// DecomposeLeft computes the left eigen-decomposition of a, i.e. the right
// decomposition of its transpose, sorted the same way.
func DecomposeLeft(a *mat.Dense) (*Decomposition, error) {
	var tr mat.Dense
	tr.CloneFrom(a.T())

	return Decompose(&tr)
}

// sortByDescendingReal orders the eigenpairs by descending real part, stably.
func (d *Decomposition) sortByDescendingReal() {
	idx := d.index()
	sort.SliceStable(idx, func(i, j int) bool {
		return real(d.values[idx[i]]) > real(d.values[idx[j]])
	})

	values := make([]complex128, len(idx))
	vectors := make([][]complex128, len(idx))
	for pos, i := range idx {
		values[pos] = d.values[i]
		vectors[pos] = d.vectors[i]
	}
	d.values = values
	d.vectors = vectors
}

// index returns the identity permutation over the eigenpairs.
func (d *Decomposition) index() []int {
	idx := make([]int, len(d.values))
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// Len returns the number of eigenpairs (the matrix dimension).
func (d *Decomposition) Len() int { return len(d.values) }

// Value returns eigenvalue i.
func (d *Decomposition) Value(i int) complex128 { return d.values[i] }

// Values returns a copy of all eigenvalues in sorted order.
func (d *Decomposition) Values() []complex128 {
	return append([]complex128(nil), d.values...)
}

// Vector returns a copy of the eigenvector matching Value(i).
func (d *Decomposition) Vector(i int) []complex128 {
	return append([]complex128(nil), d.vectors[i]...)
}
