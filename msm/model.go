package msm

import (
	"sync"

	"github.com/katalvlaran/markov/matrix"
	"github.com/katalvlaran/markov/pcca"
	"github.com/katalvlaran/markov/spectral"
)

// Model is an immutable Markov state model: one validated transition matrix,
// a lag time, and a write-once cache per derived quantity. Models are cheap
// to share; all accessors are safe for concurrent use.
type Model struct {
	t         *matrix.Stochastic
	lagtime   int
	clusterer pcca.Clusterer

	// Lazily computed, memoized derived state. Each field transitions at
	// most once from unset to computed; errors are memoized with the value.
	classesOnce sync.Once
	classesVal  []CommunicationClass

	aperiodicOnce sync.Once
	aperiodicVal  bool

	leftOnce sync.Once
	leftVal  *spectral.Decomposition
	leftErr  error

	rightOnce sync.Once
	rightVal  *spectral.Decomposition
	rightErr  error

	piOnce sync.Once
	piVal  []float64
	piErr  error

	bwdOnce sync.Once
	bwdVal  *matrix.Stochastic
	bwdErr  error
}

// New builds a Model around an already validated transition matrix.
// The matrix itself carries the structural invariants (square,
// row-stochastic, bijective labels); New only rejects nil.
func New(t *matrix.Stochastic, opts ...Option) (*Model, error) {
	if t == nil {
		return nil, ErrNilMatrix
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Model{t: t, lagtime: o.lagtime, clusterer: o.clusterer}, nil
}

// NumStates returns the number of states.
func (m *Model) NumStates() int { return m.t.N() }

// States returns the state labels in matrix row order.
func (m *Model) States() []string { return m.t.Labels() }

// Lagtime returns the model lag time.
func (m *Model) Lagtime() int { return m.lagtime }

// TransitionMatrix returns the forward transition matrix. The value is
// immutable and shared, not copied.
func (m *Model) TransitionMatrix() *matrix.Stochastic { return m.t }
