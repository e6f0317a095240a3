package msm

// IsAperiodic reports whether the chain is aperiodic, using a structural
// cycle-length GCD walk rather than the spectrum.
//
// For each state s, an indicator vector at s is propagated through the
// transition graph and binarized after every step, so entry j is "reachable
// from s in exactly i steps". Every step length i at which s is reachable
// from itself enters a running GCD; that GCD is the period of s. Path lengths
// up to 2n−1 decide the period of every state.
//
// Early exits: in an irreducible chain one state of period 1 makes the whole
// chain aperiodic; conversely any state whose period stays above 1 after the
// step budget makes the chain periodic. For reducible chains every state must
// individually resolve to period 1.
//
// For irreducible chains the result agrees with the spectral Period (number
// of unit-modulus eigenvalues) being 1.
func (m *Model) IsAperiodic() bool {
	m.aperiodicOnce.Do(func() {
		m.aperiodicVal = m.determineAperiodicity()
	})

	return m.aperiodicVal
}

func (m *Model) determineAperiodicity() bool {
	n := m.t.N()
	irreducible := m.IsIrreducible()

	pos := make([]bool, n)
	next := make([]bool, n)
	for s := 0; s < n; s++ {
		for i := range pos {
			pos[i] = false
		}
		pos[s] = true

		period := -1
		for step := 1; step <= 2*n-1; step++ {
			// One binarized propagation: next[j] iff some reachable i has an
			// edge i -> j. Binarizing avoids decaying probability magnitudes.
			for j := range next {
				next[j] = false
			}
			for i := 0; i < n; i++ {
				if !pos[i] {
					continue
				}
				for j := 0; j < n; j++ {
					if !next[j] && m.t.HasEdge(i, j) {
						next[j] = true
					}
				}
			}
			pos, next = next, pos

			if pos[s] {
				if period == -1 {
					period = step
				} else {
					period = gcd(step, period)
				}
			}
			if period == 1 {
				if irreducible {
					return true // one aperiodic state decides an irreducible chain
				}

				break
			}
		}
		if period != 1 {
			return false
		}
	}

	return true
}

// gcd returns the greatest common divisor of a and b by Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
