package qgame

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// probabilityEpsilon is the weight below which an outcome counts as impossible.
const probabilityEpsilon = 1e-12

/*
sampleIndex picks an index with probability proportional to its weight, the
same way a wave function collapses onto one of its states. Zero-weight
indices are never returned.
*/
func sampleIndex(probs []float64, rng *rand.Rand) int {
	return int(distuv.NewCategorical(probs, rng).Rand())
}

/*
sample draws count joint readings of the qids at the given register
positions without disturbing the state.
*/
func (sv *StateVector) sample(positions []int, count int, rng *rand.Rand) [][]int {
	dist := distuv.NewCategorical(sv.probabilities(), rng)
	out := make([][]int, count)

	for n := range out {
		idx := int(dist.Rand())
		reading := make([]int, len(positions))
		for i, q := range positions {
			reading[i] = sv.digit(idx, q)
		}
		out[n] = reading
	}

	return out
}
