package operators

import (
	"math/rand"

	"github.com/sgklab/evoso/internal/optimization"
)

// DE is the differential evolution operator.
//
// For each slot it builds a mutant vector from three distinct donors, then
// crosses it into a zero-initialized offspring vector: one dimension chosen
// uniformly at random is always inherited from the mutant, every other
// dimension is inherited independently with probability CR. Dimensions that
// fail the crossover test keep the zero default, not the parent's value.
type DE struct {
	// CR is the crossover rate.
	CR float64
	// F is the scaling factor of the difference vector.
	F float64

	rng *rand.Rand
}

// NewDE creates a DE operator with the given crossover rate and scaling
// factor. Seed 0 derives a seed from the clock.
func NewDE(cr, f float64, seed int64) *DE {
	return &DE{CR: cr, F: f, rng: newRand(seed)}
}

// Evolve produces the offspring population. Each offspring carries its
// parent's prior objective, stale until re-evaluated.
func (o *DE) Evolve(pop optimization.Population) optimization.Population {
	vars := pop.Variables()
	n := len(pop)
	d := pop.Dimension()

	offsprings := make(optimization.Population, 0, n)
	for i := 0; i < n; i++ {
		r1, r2, r3 := donors(o.rng, n, i)
		m := mutant(vars, r1, r2, r3, o.F)

		child := make([]float64, d)
		point := o.rng.Intn(d)
		for j := 0; j < d; j++ {
			if j == point || o.rng.Float64() < o.CR {
				child[j] = m[j]
			}
		}

		offsprings = append(offsprings, optimization.Solution{
			Variables: child,
			Objective: pop[i].CloneObjective(),
		})
	}

	return offsprings
}
