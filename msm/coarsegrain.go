package msm

import "fmt"

// PCCA computes the PCCA++ membership-probability matrix: one row per state,
// one column per metastable set, rows summing to 1 with entries in [0,1].
//
// Requires a reversible chain (ErrNotReversible; reducibility surfaces first
// as ErrNotIrreducible from the reversibility check) and
// 1 ≤ numSets ≤ NumStates (ErrSetCount). The clustering itself is delegated
// to the configured pcca.Clusterer and recomputed per call.
func (m *Model) PCCA(numSets int) ([][]float64, error) {
	reversible, err := m.IsReversible()
	if err != nil {
		return nil, err
	}
	if !reversible {
		return nil, fmt.Errorf("PCCA: %w", ErrNotReversible)
	}
	if numSets < 1 || numSets > m.t.N() {
		return nil, fmt.Errorf("PCCA: numSets=%d, n=%d: %w", numSets, m.t.N(), ErrSetCount)
	}

	pi, err := m.StationaryDistribution()
	if err != nil {
		return nil, err
	}

	return m.clusterer.Memberships(m.t.Dense(), pi, numSets)
}

// MetastableSetAssignments returns, per state in row order, the index of the
// metastable set with the highest membership probability. Ties resolve to the
// first-occurring set index.
func (m *Model) MetastableSetAssignments(numSets int) ([]int, error) {
	memberships, err := m.PCCA(numSets)
	if err != nil {
		return nil, err
	}

	assignments := make([]int, len(memberships))
	for i, row := range memberships {
		argmax := 0
		for j, p := range row {
			if p > row[argmax] {
				argmax = j
			}
		}
		assignments[i] = argmax
	}

	return assignments, nil
}

// MetastableSets returns the inverse grouping of MetastableSetAssignments:
// numSets groups of state labels (possibly empty) that together cover every
// state exactly once.
func (m *Model) MetastableSets(numSets int) ([][]string, error) {
	assignments, err := m.MetastableSetAssignments(numSets)
	if err != nil {
		return nil, err
	}

	sets := make([][]string, numSets)
	for i, set := range assignments {
		sets[set] = append(sets[set], m.t.Label(i))
	}

	return sets, nil
}
