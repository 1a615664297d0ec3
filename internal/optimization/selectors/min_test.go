package selectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgklab/evoso/internal/optimization"
)

func evaluated(obj float64) optimization.Solution {
	return optimization.NewSolution([]float64{obj}, []float64{obj})
}

func TestMinSelectGreedyPerSlot(t *testing.T) {
	parents := optimization.Population{evaluated(5), evaluated(1), evaluated(3)}
	offsprings := optimization.Population{evaluated(2), evaluated(4), evaluated(3)}

	next, err := NewMin().Select(parents, offsprings)
	require.NoError(t, err)
	require.Len(t, next, len(parents))

	assert.Equal(t, 2.0, next[0].Objective[0], "offspring strictly better replaces parent")
	assert.Equal(t, 1.0, next[1].Objective[0], "worse offspring keeps parent")
	assert.Equal(t, 3.0, next[2].Objective[0], "ties keep the parent")
	assert.Equal(t, parents[2].Variables, next[2].Variables)
}

func TestMinSelectMonotone(t *testing.T) {
	parents := optimization.Population{evaluated(9), evaluated(0.5), evaluated(7), evaluated(2)}
	offsprings := optimization.Population{evaluated(3), evaluated(8), evaluated(7.0001), evaluated(1)}

	next, err := NewMin().Select(parents, offsprings)
	require.NoError(t, err)

	for i := range next {
		lower := math.Min(parents[i].Objective[0], offsprings[i].Objective[0])
		assert.LessOrEqual(t, next[i].Objective[0], lower)
	}
}

func TestMinSelectUnevaluatedNeverWins(t *testing.T) {
	parents := optimization.Population{evaluated(5), optimization.Unevaluated([]float64{1})}
	offsprings := optimization.Population{
		optimization.Unevaluated([]float64{0}),
		evaluated(0),
	}

	next, err := NewMin().Select(parents, offsprings)
	require.NoError(t, err)

	assert.Equal(t, parents[0], next[0], "unevaluated offspring cannot replace parent")
	assert.Equal(t, parents[1], next[1], "unevaluated parent is never compared")
}

func TestMinSelectDoesNotAliasOffspring(t *testing.T) {
	parents := optimization.Population{evaluated(5)}
	offsprings := optimization.Population{evaluated(2)}

	next, err := NewMin().Select(parents, offsprings)
	require.NoError(t, err)

	next[0].Variables[0] = 99
	assert.Equal(t, 2.0, offsprings[0].Variables[0])
}

func TestMinSelectSizeInvariance(t *testing.T) {
	for _, n := range []int{1, 4, 17} {
		parents := make(optimization.Population, n)
		offsprings := make(optimization.Population, n)
		for i := 0; i < n; i++ {
			parents[i] = evaluated(float64(i))
			offsprings[i] = evaluated(float64(n - i))
		}

		next, err := NewMin().Select(parents, offsprings)
		require.NoError(t, err)
		assert.Len(t, next, n)
	}
}
