// Package chains builds canonical transition matrices with known analytic
// properties: cycles (periodic), lazy uniform walks (aperiodic, irreducible),
// birth–death chains (reversible by construction), absorbing chains
// (reducible), and block-metastable chains (the standard PCCA fixture).
//
// Generators are deterministic and always produce valid matrices; parameters
// that cannot yield one (non-positive sizes, probabilities outside (0,1))
// are programmer errors and panic, mirroring the option validation style of
// the rest of the library.
package chains
