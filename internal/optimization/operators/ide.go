package operators

import (
	"math"
	"math/rand"

	"github.com/sgklab/evoso/internal/optimization"
)

// IDE is the interactive differential evolution operator used for
// human-judged audio search.
//
// It shares DE's mutant construction but replaces crossover with an
// elementwise blend between parent and mutant: one scalar u in [0,1) is
// drawn per slot and applied to every dimension, so each offspring value
// stays inside the interval spanned by parent and mutant. Audio decision
// vectors diverge easily, and the interval blend makes explicit bound
// clamping unnecessary.
type IDE struct {
	// F is the scaling factor of the difference vector.
	F float64

	rng *rand.Rand
}

// NewIDE creates an IDE operator. Seed 0 derives a seed from the clock.
func NewIDE(f float64, seed int64) *IDE {
	return &IDE{F: f, rng: newRand(seed)}
}

// Evolve produces the offspring population. Each offspring carries its
// parent's prior objective; for interactive problems this is never
// re-evaluated numerically.
func (o *IDE) Evolve(pop optimization.Population) optimization.Population {
	vars := pop.Variables()
	n := len(pop)
	d := pop.Dimension()

	offsprings := make(optimization.Population, 0, n)
	for i := 0; i < n; i++ {
		r1, r2, r3 := donors(o.rng, n, i)
		m := mutant(vars, r1, r2, r3, o.F)

		u := o.rng.Float64()
		child := make([]float64, d)
		for j := 0; j < d; j++ {
			lo := math.Min(vars[i][j], m[j])
			hi := math.Max(vars[i][j], m[j])
			child[j] = lo + u*(hi-lo)
		}

		offsprings = append(offsprings, optimization.Solution{
			Variables: child,
			Objective: pop[i].CloneObjective(),
		})
	}

	return offsprings
}
