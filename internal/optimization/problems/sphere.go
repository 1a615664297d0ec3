// Package problems implements the optimization problems the engines drive:
// the closed-form sphere benchmark and the human-judged sound search.
package problems

import (
	"math/rand"
	"time"

	"github.com/sgklab/evoso/internal/optimization"
)

// Sphere is the sum-of-squares benchmark problem, minimized over a
// hypercube of ±100 per dimension.
type Sphere struct {
	n     int
	m     int
	d     int
	fe    int
	maxFE int
	lower []float64
	upper []float64
	rng   *rand.Rand
}

var _ optimization.EquationProblem = (*Sphere)(nil)

// NewSphere creates a sphere problem with population size n, m objectives,
// dimension d, and an evaluation budget of maxFE. Seed 0 derives a seed
// from the clock.
func NewSphere(n, m, d, maxFE int, seed int64) *Sphere {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lower := make([]float64, d)
	upper := make([]float64, d)
	for i := range lower {
		lower[i] = -100
		upper[i] = 100
	}
	return &Sphere{
		n:     n,
		m:     m,
		d:     d,
		maxFE: maxFE,
		lower: lower,
		upper: upper,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Initialize draws n vectors uniformly from the scalar bound broadcast
// across dimensions and evaluates them all.
func (p *Sphere) Initialize() (optimization.Population, error) {
	pop := make(optimization.Population, 0, p.n)
	for i := 0; i < p.n; i++ {
		vars := make([]float64, p.d)
		for j := range vars {
			vars[j] = p.lower[0] + p.rng.Float64()*(p.upper[0]-p.lower[0])
		}
		pop = append(pop, optimization.NewSolution(vars, make([]float64, p.m)))
	}
	return p.EvaluateAll(pop), nil
}

// Evaluate returns a new solution whose objective is the sum of squares of
// the variable vector.
func (p *Sphere) Evaluate(sol optimization.Solution) optimization.Solution {
	sum := 0.0
	for _, v := range sol.Variables {
		sum += v * v
	}
	return optimization.NewSolution(sol.Variables, []float64{sum})
}

// EvaluateAll evaluates every member and advances the evaluation counter by
// the population size.
func (p *Sphere) EvaluateAll(pop optimization.Population) optimization.Population {
	out := make(optimization.Population, len(pop))
	for i, s := range pop {
		out[i] = p.Evaluate(s)
	}
	p.fe += len(pop)
	return out
}

// Terminated reports true once the evaluation count strictly exceeds the
// budget. Because the check happens only at the top of a generation, a run
// overshoots the nominal budget by up to one full generation of
// evaluations.
func (p *Sphere) Terminated() (bool, error) {
	return p.fe > p.maxFE, nil
}

// Evaluations returns the cumulative evaluation count.
func (p *Sphere) Evaluations() int {
	return p.fe
}
