package qgame

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

/*
StateVector holds the amplitudes of every basis state of a register of qids.
The register is laid out big-endian: the qid added first is the most
significant digit of an amplitude index.
*/
type StateVector struct {
	dims    []int
	strides []int
	Vector  []complex128
}

// newStateVector returns the basis state where qid i holds values[i].
func newStateVector(dims []int, values []int) *StateVector {
	sv := &StateVector{Vector: []complex128{1}}
	for i, d := range dims {
		sv.addQid(d, values[i])
	}
	return sv
}

// size is the number of amplitudes a register with one more qid of dim d
// would need.
func (sv *StateVector) sizeWith(d int) int {
	return len(sv.Vector) * d
}

// addQid extends the register with a new least significant qid set to value.
func (sv *StateVector) addQid(d, value int) {
	next := make([]complex128, len(sv.Vector)*d)
	for i, amp := range sv.Vector {
		next[i*d+value] = amp
	}

	sv.Vector = next
	sv.dims = append(sv.dims, d)
	sv.strides = append(sv.strides, 1)
	for i := len(sv.strides) - 2; i >= 0; i-- {
		sv.strides[i] = sv.strides[i+1] * sv.dims[i+1]
	}
}

func (sv *StateVector) digit(idx, q int) int {
	return (idx / sv.strides[q]) % sv.dims[q]
}

/*
apply multiplies the amplitudes of every target subspace whose controls
match by the operation matrix. targets and controls are register positions.
*/
func (sv *StateVector) apply(m [][]complex128, targets, controls, values []int) {
	d := len(m)

	// offsets[j] is the index distance of local basis state j from the
	// subspace base, where every target digit is zero.
	offsets := make([]int, d)
	for j := 0; j < d; j++ {
		rem := j
		for t := len(targets) - 1; t >= 0; t-- {
			td := sv.dims[targets[t]]
			offsets[j] += (rem % td) * sv.strides[targets[t]]
			rem /= td
		}
	}

	in := make([]complex128, d)

	for base := range sv.Vector {
		if !sv.isBase(base, targets) || !sv.matches(base, controls, values) {
			continue
		}

		for j := 0; j < d; j++ {
			in[j] = sv.Vector[base+offsets[j]]
		}

		for r := 0; r < d; r++ {
			var acc complex128
			for c := 0; c < d; c++ {
				acc += m[r][c] * in[c]
			}
			sv.Vector[base+offsets[r]] = acc
		}
	}
}

func (sv *StateVector) isBase(idx int, targets []int) bool {
	for _, t := range targets {
		if sv.digit(idx, t) != 0 {
			return false
		}
	}
	return true
}

func (sv *StateVector) matches(idx int, controls, values []int) bool {
	for i, c := range controls {
		if sv.digit(idx, c) != values[i] {
			return false
		}
	}
	return true
}

// probabilities returns the normalised probability of every basis state.
func (sv *StateVector) probabilities() []float64 {
	probs := make([]float64, len(sv.Vector))
	for i, amp := range sv.Vector {
		prob := cmplx.Abs(amp)
		probs[i] = prob * prob
	}

	if total := floats.Sum(probs); total > 0 {
		floats.Scale(1/total, probs)
	}

	return probs
}

// marginal returns the probability of each value of the qid at position q.
func (sv *StateVector) marginal(q int) []float64 {
	out := make([]float64, sv.dims[q])
	for i, p := range sv.probabilities() {
		out[sv.digit(i, q)] += p
	}
	return out
}

// Measure samples a value for the qid at position q and collapses onto it.
func (sv *StateVector) Measure(q int, rng *rand.Rand) int {
	value := sampleIndex(sv.marginal(q), rng)
	// The sampled value always has non-zero weight.
	_ = sv.collapse(q, value)
	return value
}

// collapse projects the register onto the qid at q holding value. The
// register is left untouched when that outcome is impossible.
func (sv *StateVector) collapse(q, value int) error {
	var total float64
	for i, amp := range sv.Vector {
		if sv.digit(i, q) == value {
			a := cmplx.Abs(amp)
			total += a * a
		}
	}

	if total < probabilityEpsilon {
		return fmt.Errorf("%w: qid %d = %d", ErrImpossible, q, value)
	}

	for i := range sv.Vector {
		if sv.digit(i, q) != value {
			sv.Vector[i] = 0
		}
	}

	cmplxs.Scale(complex(1/math.Sqrt(total), 0), sv.Vector)
	return nil
}
