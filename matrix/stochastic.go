package matrix

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Stochastic is an immutable, labeled, row-stochastic square matrix stored in
// row-major order. Entry (i,j) holds the probability of a one-step transition
// from state i to state j. All invariants are established by New and never
// re-checked afterwards.
type Stochastic struct {
	n      int            // dimension
	data   []float64      // flat backing storage, length n*n, row-major
	labels []string       // state labels in row order
	index  map[string]int // label -> row index
	eps    float64        // row-sum tolerance used at validation time
}

// New validates rows and builds a Stochastic.
// Stage 1 (Shape): rows must be non-empty, rectangular, and square.
// Stage 2 (Values): every entry in [0,1] and finite; every row sum ≈ 1
// within the configured epsilon.
// Stage 3 (Labels): default decimal labels or the WithLabels slice, which
// must have exactly n unique entries.
// Complexity: O(n²) time and memory.
func New(rows [][]float64, opts ...Option) (*Stochastic, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Shape checks.
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("New: %w", ErrBadShape)
	}
	for i := 1; i < n; i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("New: ragged row %d: %w", i, ErrBadShape)
		}
	}
	if len(rows[0]) != n {
		return nil, fmt.Errorf("New: %dx%d: %w", n, len(rows[0]), ErrNonSquare)
	}

	// 2. Value checks and flat copy.
	data := make([]float64, n*n)
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return nil, fmt.Errorf("New: entry (%d,%d)=%v: %w", i, j, v, ErrNotStochastic)
			}
			data[i*n+j] = v
		}
		if sum := floats.Sum(row); math.Abs(sum-1) > o.eps {
			return nil, fmt.Errorf("New: row %d sums to %v: %w", i, sum, ErrNotStochastic)
		}
	}

	// 3. Labels: defaults or validated user labels.
	labels := o.labels
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("New: %d labels for %d states: %w", len(labels), n, ErrLabelMismatch)
	}
	index := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("New: duplicate label %q: %w", l, ErrLabelMismatch)
		}
		index[l] = i
	}

	return &Stochastic{n: n, data: data, labels: labels, index: index, eps: o.eps}, nil
}

// N returns the number of states.
func (s *Stochastic) N() int { return s.n }

// Epsilon returns the row-sum tolerance the matrix was validated with.
func (s *Stochastic) Epsilon() float64 { return s.eps }

// At returns entry (i,j). Out-of-range indices are a programmer error and
// panic; use Row for a checked copy.
func (s *Stochastic) At(i, j int) float64 {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		panic(fmt.Sprintf("matrix: At(%d,%d) out of range for n=%d", i, j, s.n))
	}

	return s.data[i*s.n+j]
}

// HasEdge reports whether the one-step transition i -> j has positive
// probability. Together with N it lets a Stochastic act as the adjacency
// structure of its own transition graph.
func (s *Stochastic) HasEdge(i, j int) bool {
	return s.At(i, j) > 0
}

// Row returns a copy of row i, or ErrOutOfRange.
func (s *Stochastic) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, s.n)
	copy(out, s.data[i*s.n:(i+1)*s.n])

	return out, nil
}

// Labels returns a copy of the state labels in row order.
func (s *Stochastic) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Label returns the label of state i. Panics on out-of-range input.
func (s *Stochastic) Label(i int) string {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("matrix: Label(%d) out of range for n=%d", i, s.n))
	}

	return s.labels[i]
}

// Index returns the row index of the given label and whether it exists.
func (s *Stochastic) Index(label string) (int, bool) {
	i, ok := s.index[label]

	return i, ok
}

// Dense returns a fresh gonum mat.Dense copy of the matrix for numeric work.
// The receiver is never aliased.
func (s *Stochastic) Dense() *mat.Dense {
	return mat.NewDense(s.n, s.n, append([]float64(nil), s.data...))
}

// Reverse returns the time-reversed chain B[a,b] = pi[b]·T[b,a]/pi[a] for the
// supplied stationary distribution pi. The result carries the same labels and
// epsilon, and is re-validated: a pi that is not stationary for the receiver
// surfaces as ErrNotStochastic.
func (s *Stochastic) Reverse(pi []float64) (*Stochastic, error) {
	if len(pi) != s.n {
		return nil, fmt.Errorf("Reverse: distribution length %d for n=%d: %w", len(pi), s.n, ErrBadShape)
	}
	for i, p := range pi {
		if !(p > 0) {
			return nil, fmt.Errorf("Reverse: pi[%d]=%v must be positive: %w", i, p, ErrBadShape)
		}
	}

	rows := make([][]float64, s.n)
	for a := 0; a < s.n; a++ {
		row := make([]float64, s.n)
		for b := 0; b < s.n; b++ {
			row[b] = pi[b] * s.At(b, a) / pi[a]
		}
		rows[a] = row
	}

	return New(rows, WithLabels(s.labels), WithEpsilon(s.eps))
}

// Submatrix returns the principal submatrix selected by indices, with the
// corresponding labels, in the given order. Indices must be unique and in
// range. The selection must itself be row-stochastic (true exactly when the
// selected states form a closed set); leaking probability mass surfaces as
// ErrNotStochastic.
func (s *Stochastic) Submatrix(indices []int) (*Stochastic, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Submatrix: empty selection: %w", ErrBadShape)
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= s.n {
			return nil, fmt.Errorf("Submatrix: index %d: %w", i, ErrOutOfRange)
		}
		if seen[i] {
			return nil, fmt.Errorf("Submatrix: duplicate index %d: %w", i, ErrBadShape)
		}
		seen[i] = true
	}

	rows := make([][]float64, len(indices))
	labels := make([]string, len(indices))
	for r, i := range indices {
		row := make([]float64, len(indices))
		for c, j := range indices {
			row[c] = s.At(i, j)
		}
		rows[r] = row
		labels[r] = s.labels[i]
	}

	return New(rows, WithLabels(labels), WithEpsilon(s.eps))
}
