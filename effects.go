package qgame

import "fmt"

// FlipEffect rotates qubits around X. A fraction of 1 is a full bit flip.
type FlipEffect struct {
	Fraction float64
}

// Flip returns an effect that flips every qubit it is applied to.
func Flip() *FlipEffect { return &FlipEffect{Fraction: 1} }

// FlipFraction returns a partial flip. FlipFraction(0.5) on a qubit holding
// 0 leaves it reading 0 or 1 with equal probability.
func FlipFraction(t float64) *FlipEffect { return &FlipEffect{Fraction: t} }

func (e *FlipEffect) NumDimension() (int, bool) { return 2, true }
func (e *FlipEffect) NumObjects() (int, bool) { return 0, false }

func (e *FlipEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	ops := make([]Operation, len(objects))
	for i, obj := range objects {
		if e.Fraction == 1 {
			ops[i] = X(obj.Qid)
			continue
		}
		ops[i] = XPow(obj.Qid, e.Fraction)
	}
	return ops, nil
}

// CycleEffect adds N to each object, wrapping at its dimension.
type CycleEffect struct {
	AnyArity
	N int
}

func Cycle(n int) *CycleEffect { return &CycleEffect{N: n} }

func (e *CycleEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	ops := make([]Operation, len(objects))
	for i, obj := range objects {
		ops[i] = Shift(obj.Qid, e.N)
	}
	return ops, nil
}

// PhaseEffect applies Z^T to each qubit.
type PhaseEffect struct {
	T float64
}

func Phase(t float64) *PhaseEffect { return &PhaseEffect{T: t} }

func (e *PhaseEffect) NumDimension() (int, bool) { return 2, true }
func (e *PhaseEffect) NumObjects() (int, bool) { return 0, false }

func (e *PhaseEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	ops := make([]Operation, len(objects))
	for i, obj := range objects {
		ops[i] = ZPow(obj.Qid, e.T)
	}
	return ops, nil
}

// SuperpositionEffect spreads each object evenly over all of its values.
type SuperpositionEffect struct {
	AnyArity
}

func Superposition() *SuperpositionEffect { return &SuperpositionEffect{} }

func (e *SuperpositionEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	ops := make([]Operation, len(objects))
	for i, obj := range objects {
		ops[i] = H(obj.Qid)
	}
	return ops, nil
}

// MoveEffect swaps the values of a source and a target object.
type MoveEffect struct{}

func Move() *MoveEffect { return &MoveEffect{} }

func (e *MoveEffect) NumDimension() (int, bool) { return 0, false }
func (e *MoveEffect) NumObjects() (int, bool) { return 2, true }

func (e *MoveEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	if len(objects) != 2 {
		return nil, fmt.Errorf("%w: cannot apply effect to %d qubits", ErrObjectCount, len(objects))
	}

	if objects[0].NumStates != objects[1].NumStates {
		return nil, fmt.Errorf(
			"%w: cannot move %s (%d states) into %s (%d states)",
			ErrDimension, objects[0].Name, objects[0].NumStates, objects[1].Name, objects[1].NumStates,
		)
	}

	return []Operation{Swap(objects[0].Qid, objects[1].Qid)}, nil
}

/*
SplitEffect moves a source qubit into two targets at once. The source is
swapped into the first target, which is then half swapped with the second,
so a source holding 1 ends up as an even superposition of the two targets.
*/
type SplitEffect struct{}

func Split() *SplitEffect { return &SplitEffect{} }

func (e *SplitEffect) NumDimension() (int, bool) { return 2, true }
func (e *SplitEffect) NumObjects() (int, bool) { return 3, true }

func (e *SplitEffect) Effect(objects ...*QuantumObject) ([]Operation, error) {
	if len(objects) != 3 {
		return nil, fmt.Errorf("%w: cannot apply effect to %d qubits", ErrObjectCount, len(objects))
	}

	source, first, second := objects[0].Qid, objects[1].Qid, objects[2].Qid

	return []Operation{
		Swap(source, first),
		SqrtISwap(first, second),
	}, nil
}
