// Package matrix: functional configuration for Stochastic construction.
// Defaults are documented constants (single source of truth); WithX
// constructors panic only on nonsensical parameters (programmer error),
// never on data-dependent conditions.

package matrix

import "math"

// DefaultEpsilon is the absolute tolerance applied to row-sum validation.
// A row passes when |sum - 1| <= eps.
const DefaultEpsilon = 1e-8

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and non-negative"

// Option mutates construction options. Options are applied in order and are
// safe to apply repeatedly.
type Option func(*options)

// options holds the construction-time configuration of a Stochastic.
type options struct {
	labels []string // state labels; nil means decimal defaults "0".."n-1"
	eps    float64  // row-sum tolerance
}

// defaultOptions returns the zero-configuration used by New.
func defaultOptions() options {
	return options{
		labels: nil,
		eps:    DefaultEpsilon,
	}
}

// WithLabels attaches explicit state labels, shared by rows and columns in
// row order. The slice is copied. Length and uniqueness are validated by New
// (ErrLabelMismatch), not here, since they depend on the data.
func WithLabels(labels []string) Option {
	return func(o *options) {
		o.labels = append([]string(nil), labels...)
	}
}

// WithEpsilon sets the absolute row-sum tolerance. Panics if eps is negative,
// NaN, or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) {
		o.eps = eps
	}
}
