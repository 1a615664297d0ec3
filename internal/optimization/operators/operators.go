// Package operators implements the evolutionary operators that produce an
// offspring population from a parent population.
package operators

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sgklab/evoso/internal/optimization"
)

// newRand builds the operator's owned random source. Seed 0 means derive
// one from the clock; any other seed makes the operator reproducible.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// MinPopulation is the smallest population the donor draw supports: every
// slot needs three distinct partners besides itself.
const MinPopulation = 4

// donors draws three distinct population indices, none equal to i, uniformly
// without replacement from the n-1 remaining slots. The caller must ensure
// n >= MinPopulation.
func donors(rng *rand.Rand, n, i int) (r1, r2, r3 int) {
	idx := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != i {
			idx = append(idx, j)
		}
	}
	rng.Shuffle(len(idx), func(a, b int) {
		idx[a], idx[b] = idx[b], idx[a]
	})
	return idx[0], idx[1], idx[2]
}

// mutant computes x[r3] + F*(x[r1] - x[r2]) elementwise.
func mutant(vars [][]float64, r1, r2, r3 int, f float64) []float64 {
	d := len(vars[r1])
	m := make([]float64, d)
	floats.SubTo(m, vars[r1], vars[r2])
	floats.Scale(f, m)
	floats.Add(m, vars[r3])
	return m
}

var (
	_ optimization.Operator = (*DE)(nil)
	_ optimization.Operator = (*IDE)(nil)
)
