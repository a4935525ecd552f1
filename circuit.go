package qgame

import (
	"fmt"
	"strings"
)

/*
Operation is a unitary applied to one or more target qids, optionally
conditioned on a set of control qids holding specific values.

Matrix is a D x D row-major matrix, where D is the product of the target
dimensions. The first target is the most significant digit of the row and
column index.
*/
type Operation struct {
	Name          string
	Matrix        [][]complex128
	Targets       []*Qid
	Controls      []*Qid
	ControlValues []int
}

// ControlledBy returns a copy of the operation that only acts when every
// given qid holds the value 1.
func (op Operation) ControlledBy(qids ...*Qid) Operation {
	values := make([]int, len(qids))
	for i := range values {
		values[i] = 1
	}

	return op.ControlledByValues(qids, values)
}

// ControlledByValues returns a copy of the operation that only acts when
// qids[i] holds values[i] for every i.
func (op Operation) ControlledByValues(qids []*Qid, values []int) Operation {
	out := op
	out.Controls = append(append([]*Qid{}, op.Controls...), qids...)
	out.ControlValues = append(append([]int{}, op.ControlValues...), values...)
	return out
}

// Qids returns every qid the operation touches, controls first.
func (op Operation) Qids() []*Qid {
	return append(append([]*Qid{}, op.Controls...), op.Targets...)
}

// dim is the size of the target subspace.
func (op Operation) dim() int {
	d := 1
	for _, q := range op.Targets {
		d *= q.Dim
	}
	return d
}

func (op Operation) validate() error {
	if len(op.Targets) == 0 {
		return fmt.Errorf("%w: %s has no targets", ErrInvalidOperation, op.Name)
	}

	if len(op.Controls) != len(op.ControlValues) {
		return fmt.Errorf(
			"%w: %s has %d controls but %d control values",
			ErrInvalidOperation, op.Name, len(op.Controls), len(op.ControlValues),
		)
	}

	seen := make(map[*Qid]bool)
	for _, q := range op.Qids() {
		if seen[q] {
			return fmt.Errorf("%w: %s uses %s twice", ErrInvalidOperation, op.Name, q.Name)
		}
		seen[q] = true
	}

	for i, q := range op.Controls {
		if op.ControlValues[i] < 0 || op.ControlValues[i] >= q.Dim {
			return fmt.Errorf(
				"%w: control value %d out of range for %s",
				ErrInvalidOperation, op.ControlValues[i], q,
			)
		}
	}

	d := op.dim()
	if len(op.Matrix) != d {
		return fmt.Errorf("%w: %s matrix has %d rows, want %d", ErrInvalidOperation, op.Name, len(op.Matrix), d)
	}

	for _, row := range op.Matrix {
		if len(row) != d {
			return fmt.Errorf("%w: %s matrix is not square", ErrInvalidOperation, op.Name)
		}
	}

	return nil
}

/*
String renders the operation the way it would read in a circuit listing.
Controls are printed in a C(...) prefix, with the control value shown when
it is anything other than 1.
*/
func (op Operation) String() string {
	var b strings.Builder

	if len(op.Controls) > 0 {
		parts := make([]string, len(op.Controls))
		for i, q := range op.Controls {
			if op.ControlValues[i] == 1 {
				parts[i] = q.Name
				continue
			}
			parts[i] = fmt.Sprintf("%s=%d", q.Name, op.ControlValues[i])
		}
		fmt.Fprintf(&b, "C(%s)", strings.Join(parts, ","))
	}

	targets := make([]string, len(op.Targets))
	for i, q := range op.Targets {
		targets[i] = q.Name
	}
	fmt.Fprintf(&b, "%s(%s)", op.Name, strings.Join(targets, ","))

	return b.String()
}
