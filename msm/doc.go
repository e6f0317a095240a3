// Package msm is the analysis engine for discrete-time Markov state models.
// A Model owns one validated transition matrix and a lag time, and exposes
// every derived quantity through lazily computed, memoized accessors:
//
//   - Structure: CommunicationClasses (Kosaraju SCC, sorted by descending
//     size), IsIrreducible, IsAperiodic (cycle-length GCD walk), Restriction
//     to a closed class.
//   - Spectrum: Eigenvalues, Left/RightEigenvectors, StationaryDistribution,
//     Period, ImpliedTimescales, BackwardTransitionMatrix, IsReversible.
//   - Transition-path theory: ForwardCommittors, BackwardCommittors,
//     ProbabilityCurrent, EffectiveProbabilityCurrent, TransitionRate,
//     MeanFirstPassageTime.
//   - Coarse-graining: PCCA, MetastableSetAssignments, MetastableSets, with
//     a pluggable pcca.Clusterer.
//
// Concurrency: a Model is safe for concurrent readers. The transition matrix
// is immutable and every derived field is computed at most once behind its
// own sync.Once; errors are memoized alongside values, so repeated access
// returns identical results. Restriction produces a new Model, it never
// mutates the receiver.
//
// Error model: two kinds cover every failure.
//
//   - ErrInvalidValue – a caller-supplied argument violates a structural
//     precondition (unknown state label, overlapping committor sets, set
//     count out of range, restriction to a non-closed class). Detected
//     eagerly at the call boundary.
//   - ErrInvalidOperation – the requested quantity is mathematically
//     undefined for this chain (stationary distribution, period, backward
//     matrix, or PCCA of a reducible chain; PCCA of a non-reversible chain).
//     Detected lazily when the dependent quantity is first requested.
//
// Specific conditions wrap one of the two kinds, so errors.Is matches either
// the condition (e.g. ErrNotIrreducible) or the kind (ErrInvalidOperation).
// Internal numerical consistency violations (a stationary eigenvector with an
// imaginary part, a singular committor system on a well-posed problem) are
// definitional bugs and panic instead of returning a typed error.
package msm
