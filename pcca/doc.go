// Package pcca clusters the states of a reversible Markov chain into
// metastable sets via PCCA++ (Perron cluster cluster analysis): the slow
// dynamics of a reversible chain live in the span of its top eigenvectors,
// and states map into a (k−1)-simplex whose vertices are the metastable sets.
//
// The routine is deliberately pluggable: the Clusterer interface is "given a
// reversible transition matrix, its stationary distribution, and a target set
// count, return a row-stochastic membership matrix", so alternative spectral
// clusterings can be swapped in without touching the model core.
//
// PCCAPlus, the default implementation, uses the inner simplex algorithm:
// pick the k mutually most distant rows of the eigenvector matrix as simplex
// vertices, express every row in the vertex basis, and read the coordinates
// as membership probabilities (clamped to [0,1] and renormalized per row).
//
// Errors:
//   - ErrNilMatrix       transition matrix is nil or not square
//   - ErrClusterCount    k outside [1, number of states]
//   - ErrDegenerate      simplex vertices are not linearly independent
package pcca
