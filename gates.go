package qgame

import (
	"math"
	"math/cmplx"
)

func zeros(d int) [][]complex128 {
	m := make([][]complex128, d)
	for i := range m {
		m[i] = make([]complex128, d)
	}
	return m
}

// X increments a qid by one, wrapping at its dimension. On a qubit this is
// the Pauli X gate.
func X(q *Qid) Operation {
	op := Shift(q, 1)
	op.Name = "X"
	return op
}

// Shift adds n to the value of q, modulo its dimension.
func Shift(q *Qid, n int) Operation {
	d := q.Dim
	m := zeros(d)
	for k := 0; k < d; k++ {
		m[((k+n)%d+d)%d][k] = 1
	}

	return Operation{Name: "Shift", Matrix: m, Targets: []*Qid{q}}
}

/*
XPow is a fractional X rotation on a qubit. Starting from |0⟩ the
probability of reading 1 afterwards is sin²(πt/2), so t=1 is a full flip
and t=0.5 an even split.
*/
func XPow(q *Qid, t float64) Operation {
	p := cmplx.Exp(complex(0, math.Pi*t))
	a := (1 + p) / 2
	b := (1 - p) / 2

	return Operation{
		Name:    "XPow",
		Matrix:  [][]complex128{{a, b}, {b, a}},
		Targets: []*Qid{q},
	}
}

// ZPow applies Z^t to a qubit.
func ZPow(q *Qid, t float64) Operation {
	return Operation{
		Name:    "Z",
		Matrix:  [][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi*t))}},
		Targets: []*Qid{q},
	}
}

/*
H puts a qid into an even superposition of all its values. For a qubit this
is the Hadamard gate

	H = 1/√2 * [1  1]
	           [1 -1]

and for a qudit of dimension d it is the d-point discrete Fourier transform.
*/
func H(q *Qid) Operation {
	d := q.Dim
	norm := complex(1/math.Sqrt(float64(d)), 0)
	m := zeros(d)
	for j := 0; j < d; j++ {
		for k := 0; k < d; k++ {
			m[j][k] = norm * cmplx.Exp(complex(0, 2*math.Pi*float64(j*k)/float64(d)))
		}
	}

	return Operation{Name: "H", Matrix: m, Targets: []*Qid{q}}
}

// Swap exchanges the values of two qids of the same dimension.
func Swap(a, b *Qid) Operation {
	d := a.Dim
	m := zeros(d * d)
	for ja := 0; ja < d; ja++ {
		for jb := 0; jb < d; jb++ {
			m[jb*d+ja][ja*d+jb] = 1
		}
	}

	return Operation{Name: "Swap", Matrix: m, Targets: []*Qid{a, b}}
}

// SqrtISwap is the square root of iSWAP on two qubits. It turns |10⟩ into
// (|10⟩ + i|01⟩)/√2.
func SqrtISwap(a, b *Qid) Operation {
	r := complex(1/math.Sqrt2, 0)
	ir := complex(0, 1/math.Sqrt2)

	return Operation{
		Name: "SqrtISwap",
		Matrix: [][]complex128{
			{1, 0, 0, 0},
			{0, r, ir, 0},
			{0, ir, r, 0},
			{0, 0, 0, 1},
		},
		Targets: []*Qid{a, b},
	}
}
