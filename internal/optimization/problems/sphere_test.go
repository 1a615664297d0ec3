package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgklab/evoso/internal/optimization"
)

func TestSphereEvaluate(t *testing.T) {
	p := NewSphere(4, 1, 3, 100, 1)

	sol := p.Evaluate(optimization.Unevaluated([]float64{1, 2, 3}))
	require.True(t, sol.Evaluated())
	assert.Equal(t, []float64{14}, sol.Objective)

	sol = p.Evaluate(optimization.Unevaluated([]float64{0, 0, 0}))
	assert.Equal(t, []float64{0}, sol.Objective)
}

func TestSphereInitialize(t *testing.T) {
	p := NewSphere(20, 1, 5, 1000, 7)

	pop, err := p.Initialize()
	require.NoError(t, err)
	require.Len(t, pop, 20)
	assert.Equal(t, 20, p.Evaluations())

	for _, s := range pop {
		require.Len(t, s.Variables, 5)
		require.True(t, s.Evaluated())
		for _, v := range s.Variables {
			assert.GreaterOrEqual(t, v, -100.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestSphereInitializeDeterministicWithSeed(t *testing.T) {
	a, err := NewSphere(10, 1, 3, 100, 42).Initialize()
	require.NoError(t, err)
	b, err := NewSphere(10, 1, 3, 100, 42).Initialize()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Termination is strict (fe > maxFE) and checked per batch, so a run always
// executes one generation past the nominal budget.
func TestSphereTerminationOvershoot(t *testing.T) {
	p := NewSphere(4, 1, 2, 8, 3)

	pop, err := p.Initialize()
	require.NoError(t, err)
	assert.Equal(t, 4, p.Evaluations())

	term, err := p.Terminated()
	require.NoError(t, err)
	assert.False(t, term)

	// First generation's evaluation batch lands exactly on the budget;
	// 8 is not > 8, so the loop runs again.
	p.EvaluateAll(pop)
	assert.Equal(t, 8, p.Evaluations())
	term, err = p.Terminated()
	require.NoError(t, err)
	assert.False(t, term)

	p.EvaluateAll(pop)
	assert.Equal(t, 12, p.Evaluations())
	term, err = p.Terminated()
	require.NoError(t, err)
	assert.True(t, term)
}

func TestSphereEvaluateAllCounts(t *testing.T) {
	p := NewSphere(4, 1, 2, 100, 3)
	pop := optimization.Population{
		optimization.Unevaluated([]float64{1, 1}),
		optimization.Unevaluated([]float64{2, 2}),
	}

	out := p.EvaluateAll(pop)
	assert.Equal(t, 2, p.Evaluations())
	assert.Equal(t, []float64{2}, out[0].Objective)
	assert.Equal(t, []float64{8}, out[1].Objective)
}
