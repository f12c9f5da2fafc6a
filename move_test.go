package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReservoirConsiderKeepsOnlyCandidateWhenSingle(t *testing.T) {
	rng := rngFromSeed(1)
	var r Reservoir[int]
	r.Consider(rng, 42)
	require.False(t, r.Empty())
	require.Equal(t, 42, r.Value)
	require.Equal(t, 1, r.Count())
}

func TestReservoirConsiderUniformlyOverManyCandidates(t *testing.T) {
	rng := rngFromSeed(7)
	counts := make(map[int]int)
	const trials = 20000
	const candidates = 5
	for i := 0; i < trials; i++ {
		var r Reservoir[int]
		for c := 0; c < candidates; c++ {
			r.Consider(rng, c)
		}
		counts[r.Value]++
	}
	for c := 0; c < candidates; c++ {
		frac := float64(counts[c]) / trials
		require.InDelta(t, 1.0/candidates, frac, 0.03)
	}
}

func TestReservoirMergeCombinesStreams(t *testing.T) {
	rng := rngFromSeed(3)
	var a, b Reservoir[string]
	a.Consider(rng, "a1")
	b.Consider(rng, "b1")
	b.Consider(rng, "b2")

	a.Merge(rng, b)
	require.Equal(t, 3, a.Count())
}

func TestReservoirMergeNoopOnEmptyOther(t *testing.T) {
	rng := rngFromSeed(4)
	var a Reservoir[int]
	a.Consider(rng, 9)
	var b Reservoir[int]
	a.Merge(rng, b)
	require.Equal(t, 9, a.Value)
	require.Equal(t, 1, a.Count())
}
