package chains

import (
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

// Cycle returns the deterministic n-cycle permutation chain
// 0 → 1 → … → n−1 → 0: irreducible with period n. Panics if n < 1.
func Cycle(n int) *matrix.Stochastic {
	if n < 1 {
		panic("chains: Cycle: n must be >= 1")
	}
	rows := zeros(n)
	for i := 0; i < n; i++ {
		rows[i][(i+1)%n] = 1
	}

	return must(rows)
}

// LazyUniform returns the lazy uniform walk on n states: each state keeps
// probability stay and spreads the rest evenly over the other states.
// Irreducible and aperiodic. Panics unless n ≥ 2 and 0 < stay < 1.
func LazyUniform(n int, stay float64) *matrix.Stochastic {
	if n < 2 {
		panic("chains: LazyUniform: n must be >= 2")
	}
	if !(stay > 0 && stay < 1) {
		panic("chains: LazyUniform: stay must be in (0,1)")
	}
	rows := zeros(n)
	move := (1 - stay) / float64(n-1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				rows[i][j] = stay
			} else {
				rows[i][j] = move
			}
		}
	}

	return must(rows)
}

// BirthDeath returns the tridiagonal birth–death chain on n states with
// up-probability up and down-probability down on the interior (leftover mass
// stays put); boundaries fold the blocked move into the diagonal. Every
// birth–death chain satisfies detailed balance, so the result is reversible.
// Panics unless n ≥ 2, up > 0, down > 0, and up+down ≤ 1.
func BirthDeath(n int, up, down float64) *matrix.Stochastic {
	if n < 2 {
		panic("chains: BirthDeath: n must be >= 2")
	}
	if !(up > 0 && down > 0 && up+down <= 1) {
		panic("chains: BirthDeath: need up > 0, down > 0, up+down <= 1")
	}
	rows := zeros(n)
	for i := 0; i < n; i++ {
		stay := 1 - up - down
		if i == 0 {
			stay += down
		} else {
			rows[i][i-1] = down
		}
		if i == n-1 {
			stay += up
		} else {
			rows[i][i+1] = up
		}
		rows[i][i] = stay
	}

	return must(rows)
}

// Absorbing returns a reducible chain on n states: every interior state
// steps right or stays with probability ½ each, and the last state absorbs.
// Panics if n < 2.
func Absorbing(n int) *matrix.Stochastic {
	if n < 2 {
		panic("chains: Absorbing: n must be >= 2")
	}
	rows := zeros(n)
	for i := 0; i < n-1; i++ {
		rows[i][i] = 0.5
		rows[i][i+1] = 0.5
	}
	rows[n-1][n-1] = 1

	return must(rows)
}

// Metastable returns a reversible chain whose states fall into the given
// blocks: transitions inside a block carry weight 1, transitions between
// neighboring blocks carry the small weight coupling, and diagonals are
// padded so every row sums equally. The weight matrix is symmetric, so the
// chain is reversible with uniform stationary distribution; for small
// coupling the blocks are the metastable sets PCCA should recover.
// Panics unless every block size is ≥ 1 and 0 < coupling < 1.
func Metastable(blocks []int, coupling float64) *matrix.Stochastic {
	if len(blocks) == 0 {
		panic("chains: Metastable: need at least one block")
	}
	n := 0
	for b, size := range blocks {
		if size < 1 {
			panic(fmt.Sprintf("chains: Metastable: block %d size must be >= 1", b))
		}
		n += size
	}
	if !(coupling > 0 && coupling < 1) {
		panic("chains: Metastable: coupling must be in (0,1)")
	}

	// Block index per state.
	block := make([]int, n)
	at := 0
	for b, size := range blocks {
		for i := 0; i < size; i++ {
			block[at] = b
			at++
		}
	}

	// Symmetric off-diagonal weights.
	w := zeros(n)
	maxSum := 0.0
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch d := block[i] - block[j]; {
			case d == 0:
				w[i][j] = 1
			case d == 1 || d == -1:
				w[i][j] = coupling
			}
			sum += w[i][j]
		}
		if sum > maxSum {
			maxSum = sum
		}
	}

	// Pad diagonals to a common row sum and normalize. The padding touches
	// only the diagonal, so symmetry (hence reversibility) is preserved.
	total := maxSum + 1
	for i := 0; i < n; i++ {
		off := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				off += w[i][j]
			}
		}
		w[i][i] = total - off
		for j := 0; j < n; j++ {
			w[i][j] /= total
		}
	}

	return must(w)
}

func zeros(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return rows
}

// must wraps matrix.New for generator output that is valid by construction.
func must(rows [][]float64) *matrix.Stochastic {
	s, err := matrix.New(rows)
	if err != nil {
		panic(fmt.Sprintf("chains: generator produced an invalid matrix: %v", err))
	}

	return s
}
