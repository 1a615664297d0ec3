// Package selectors implements the policies that merge parent and
// offspring populations into the next generation.
package selectors

import (
	"github.com/sgklab/evoso/internal/optimization"
)

// Min selects for minimization: per-slot greedy replacement, the selection
// characteristic of differential evolution. The offspring takes slot i only
// when its objective is strictly smaller than the parent's; ties keep the
// parent. Unevaluated members never win a comparison.
type Min struct{}

var _ optimization.Selector = Min{}

// NewMin creates a minimization selector.
func NewMin() Min {
	return Min{}
}

// Select returns the next generation, same size and slot order as parents.
func (Min) Select(parents, offsprings optimization.Population) (optimization.Population, error) {
	next := make(optimization.Population, len(parents))
	copy(next, parents)
	for i := range next {
		if i >= len(offsprings) {
			break
		}
		p, o := parents[i], offsprings[i]
		if !p.Evaluated() || !o.Evaluated() {
			continue
		}
		if p.Objective[0] > o.Objective[0] {
			next[i] = o.Clone()
		}
	}
	return next, nil
}
