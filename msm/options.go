// Package msm: functional configuration for Model construction.

package msm

import "github.com/katalvlaran/markov/pcca"

// DefaultLagtime is the number of underlying micro-steps represented by one
// step of the transition matrix.
const DefaultLagtime = 1

const (
	panicLagtimeInvalid   = "msm: WithLagtime: lagtime must be >= 1"
	panicClustererInvalid = "msm: WithClusterer: clusterer must not be nil"
)

// Option mutates model options. Applied in order by New.
type Option func(*options)

type options struct {
	lagtime   int
	clusterer pcca.Clusterer
}

func defaultOptions() options {
	return options{
		lagtime:   DefaultLagtime,
		clusterer: pcca.Default(),
	}
}

// WithLagtime sets the model lag time (micro-steps per macro-step).
// Panics if lagtime < 1.
func WithLagtime(lagtime int) Option {
	if lagtime < 1 {
		panic(panicLagtimeInvalid)
	}

	return func(o *options) {
		o.lagtime = lagtime
	}
}

// WithClusterer swaps the PCCA++ routine used by PCCA and the metastable-set
// accessors. Panics on nil.
func WithClusterer(c pcca.Clusterer) Option {
	if c == nil {
		panic(panicClustererInvalid)
	}

	return func(o *options) {
		o.clusterer = c
	}
}
