package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRNG returns preloaded values in order, then zero.
type seqRNG struct {
	values []float64
	pos    int
}

func (r *seqRNG) Float64() float64 {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos]
	r.pos++
	return v
}

func TestWeightedChoiceSingleItem(t *testing.T) {
	t.Parallel()

	items := []Weighted[string]{{Item: "only", Weight: 1.0}}
	assert.Equal(t, "only", WeightedChoice(items, &seqRNG{values: []float64{0.99}}))
}

func TestWeightedChoiceWalk(t *testing.T) {
	t.Parallel()

	items := []Weighted[string]{
		{Item: "a", Weight: 1.0},
		{Item: "b", Weight: 2.0},
		{Item: "c", Weight: 1.0},
	}

	testCases := []struct {
		name     string
		draw     float64 // uniform draw in [0, 1); scaled by total weight 4
		expected string
	}{
		{name: "start of range", draw: 0.0, expected: "a"},
		{name: "just inside first", draw: 0.24, expected: "a"},
		{name: "middle item", draw: 0.5, expected: "b"},
		{name: "last item", draw: 0.8, expected: "c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := WeightedChoice(items, &seqRNG{values: []float64{tc.draw}})
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWeightedChoiceFallsBackToLastItem(t *testing.T) {
	t.Parallel()

	// All-zero weights never trigger the walk; the last item is the
	// guaranteed fallback.
	items := []Weighted[string]{
		{Item: "a", Weight: 0},
		{Item: "b", Weight: 0},
	}
	assert.Equal(t, "b", WeightedChoice(items, &seqRNG{values: []float64{0.5}}))
}

func TestWeightedChoiceProportionality(t *testing.T) {
	t.Parallel()

	items := []Weighted[string]{
		{Item: "rare", Weight: 1.0},
		{Item: "common", Weight: 9.0},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	counts := map[string]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		counts[WeightedChoice(items, rng)]++
	}

	require.Equal(t, trials, counts["rare"]+counts["common"])
	// Expected ~10% rare; allow a wide statistical margin.
	assert.InDelta(t, 1000, counts["rare"], 300)
}
