package pcca

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markov/spectral"
)

var (
	// ErrNilMatrix is returned when the transition matrix is nil or not square.
	ErrNilMatrix = errors.New("pcca: transition matrix is nil or not square")

	// ErrClusterCount is returned when the requested number of metastable
	// sets is outside [1, number of states].
	ErrClusterCount = errors.New("pcca: cluster count out of range")

	// ErrDegenerate is returned when the selected simplex vertices are not
	// linearly independent, so memberships cannot be resolved.
	ErrDegenerate = errors.New("pcca: degenerate eigenvector simplex")
)

// Clusterer computes a states×k membership-probability matrix for a
// reversible transition matrix t with stationary distribution pi. Each row
// sums to 1 with entries in [0,1]. Implementations may ignore pi.
type Clusterer interface {
	Memberships(t *mat.Dense, pi []float64, k int) ([][]float64, error)
}

// PCCAPlus is the default Clusterer: PCCA++ via the inner simplex algorithm
// on the top-k right eigenvectors.
type PCCAPlus struct{}

// Default returns the library's default clusterer.
func Default() Clusterer { return PCCAPlus{} }

// Memberships implements Clusterer.
//
// Stage 1 (Spectrum): decompose t, take the real parts of the k dominant
// right eigenvectors as columns of X; the Perron column is pinned to 1.
// Stage 2 (Vertices): inner simplex algorithm — repeatedly pick the row
// farthest from the span of already chosen vertices.
// Stage 3 (Memberships): chi = X · inv(X[vertices]); clamp to [0,1] and
// renormalize each row to sum 1.
func (PCCAPlus) Memberships(t *mat.Dense, pi []float64, k int) ([][]float64, error) {
	if t == nil {
		return nil, ErrNilMatrix
	}
	n, c := t.Dims()
	if n == 0 || n != c {
		return nil, ErrNilMatrix
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("Memberships: k=%d, n=%d: %w", k, n, ErrClusterCount)
	}
	_ = pi // the simplex construction does not weight by pi

	// One set: every state belongs to it with probability 1.
	if k == 1 {
		out := make([][]float64, n)
		for i := range out {
			out[i] = []float64{1}
		}

		return out, nil
	}

	dec, err := spectral.Decompose(t)
	if err != nil {
		return nil, err
	}

	// Eigenvector matrix X (n×k). A reversible chain has a real spectrum;
	// tiny imaginary parts from the backend are discarded. The dominant
	// eigenvector is constant for a stochastic matrix, pinned to exactly 1.
	x := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, k)
		x[i][0] = 1
	}
	for j := 1; j < k; j++ {
		v := dec.Vector(j)
		for i := 0; i < n; i++ {
			x[i][j] = real(v[i])
		}
	}

	verts, err := simplexVertices(x, k)
	if err != nil {
		return nil, err
	}

	return memberships(x, verts)
}

// simplexVertices runs the inner simplex algorithm: the first vertex is the
// row of maximal norm; each further vertex is the row of maximal norm after
// deflating all rows by the directions already chosen.
func simplexVertices(x [][]float64, k int) ([]int, error) {
	n := len(x)
	ortho := make([][]float64, n)
	for i := range ortho {
		ortho[i] = append([]float64(nil), x[i]...)
	}

	verts := make([]int, k)
	verts[0] = maxNormRow(ortho)

	// Shift the origin onto the first vertex.
	first := append([]float64(nil), ortho[verts[0]]...)
	for i := range ortho {
		floats.Sub(ortho[i], first)
	}

	for j := 1; j < k; j++ {
		verts[j] = maxNormRow(ortho)
		dir := append([]float64(nil), ortho[verts[j]]...)
		norm := math.Sqrt(floats.Dot(dir, dir))
		if norm == 0 {
			return nil, fmt.Errorf("simplexVertices: vertex %d: %w", j, ErrDegenerate)
		}
		floats.Scale(1/norm, dir)

		// Deflate every row by its component along dir.
		for i := range ortho {
			proj := floats.Dot(ortho[i], dir)
			floats.AddScaled(ortho[i], -proj, dir)
		}
	}

	return verts, nil
}

// maxNormRow returns the index of the row with the largest Euclidean norm.
func maxNormRow(rows [][]float64) int {
	best, bestSq := 0, -1.0
	for i, r := range rows {
		if sq := floats.Dot(r, r); sq > bestSq {
			best, bestSq = i, sq
		}
	}

	return best
}

// memberships solves chi = X · inv(X[verts]) and post-processes chi into a
// row-stochastic matrix: negatives clamped to 0, rows renormalized to sum 1.
// A row wiped out entirely by clamping falls back to a hard assignment on its
// largest raw coordinate.
func memberships(x [][]float64, verts []int) ([][]float64, error) {
	n, k := len(x), len(verts)

	v := mat.NewDense(k, k, nil)
	for r, vi := range verts {
		v.SetRow(r, x[vi])
	}
	var inv mat.Dense
	if err := inv.Inverse(v); err != nil {
		return nil, fmt.Errorf("memberships: %w", ErrDegenerate)
	}

	flat := make([]float64, 0, n*k)
	for _, row := range x {
		flat = append(flat, row...)
	}
	var chi mat.Dense
	chi.Mul(mat.NewDense(n, k, flat), &inv)

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		mat.Row(row, i, &chi)

		argmax := 0
		for j, p := range row {
			if p > row[argmax] {
				argmax = j
			}
		}
		for j, p := range row {
			if p < 0 {
				row[j] = 0
			}
		}
		sum := floats.Sum(row)
		if sum <= 0 {
			for j := range row {
				row[j] = 0
			}
			row[argmax] = 1
		} else {
			floats.Scale(1/sum, row)
		}
		out[i] = row
	}

	return out, nil
}
