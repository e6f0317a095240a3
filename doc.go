// Package markov is an in-memory toolkit for analyzing discrete-time Markov
// state models: feed it a row-stochastic transition matrix and interrogate
// structure, spectrum, and transition pathways.
//
// 🚀 What is markov?
//
//	A deterministic, library-first analysis engine that brings together:
//		• Transition matrices: validated, labeled, immutable (matrix/)
//		• Structure: communication classes via Kosaraju SCC, closedness,
//		  irreducibility, aperiodicity by cycle-length GCD walks (scc/, msm/)
//		• Spectrum: eigen-decomposition, stationary distribution, period,
//		  implied timescales (spectral/)
//		• Transition-path theory: committors, probability currents,
//		  transition rates, mean first-passage times (msm/)
//		• Coarse-graining: PCCA++ metastable memberships behind a pluggable
//		  clusterer (pcca/)
//		• Fixtures: canonical chains for tests and examples (chains/)
//
// ✨ Why choose markov?
//
//   - Fail-fast guarantees – every matrix is validated once, then immutable
//   - Concurrency-safe – derived quantities memoized with per-field sync.Once,
//     so models can be shared by many readers
//   - Deterministic – stable orderings everywhere, no hidden randomness
//   - Extensible – swap the PCCA clusterer without touching the core
//
// Quick ASCII example, a three-state cycle:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └── 2 ◀┘
//
//	irreducible, period 3, uniform stationary distribution [⅓ ⅓ ⅓].
//
// Dive into msm.Model for the main entry point, and chains/ for ready-made
// matrices to experiment with.
//
//	go get github.com/katalvlaran/markov
package markov
