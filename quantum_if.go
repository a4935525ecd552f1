package qgame

import "fmt"

/*
QuantumThen is a conditional effect. It wraps another effect so that its
operations only act when the control objects hold the condition values.

Build one with If, narrow the condition with Equals and set the wrapped
effect with Then:

	err := qgame.Apply(qgame.If(lamp).Equals(0).Then(qgame.Flip()), door)

Errors from building the condition are kept on the value and returned when
the effect is applied.
*/
type QuantumThen struct {
	controls   []*QuantumObject
	condition  []int
	thenEffect Effect
	err        error
}

// If captures the control objects. Until Equals is called every control
// must hold 1.
func If(controls ...*QuantumObject) *QuantumThen {
	condition := make([]int, len(controls))
	for i := range condition {
		condition[i] = 1
	}

	return &QuantumThen{
		controls:  append([]*QuantumObject{}, controls...),
		condition: condition,
	}
}

// Equals sets the value each control must hold, one condition per control.
func (qt *QuantumThen) Equals(conditions ...int) *QuantumThen {
	if len(conditions) != len(qt.controls) {
		qt.err = fmt.Errorf(
			"%w: not able to equate %d qubits with %d conditions",
			ErrConditionCount, len(qt.controls), len(conditions),
		)
		return qt
	}

	for i, cond := range conditions {
		if cond < 0 || cond >= qt.controls[i].NumStates {
			qt.err = fmt.Errorf(
				"%w: %s cannot hold %d",
				ErrConditionRange, qt.controls[i].Name, cond,
			)
			return qt
		}
	}

	qt.condition = append([]int{}, conditions...)
	return qt
}

// Then sets the effect to run when the condition holds.
func (qt *QuantumThen) Then(effect Effect) *QuantumThen {
	qt.thenEffect = effect
	return qt
}

// Apply is shorthand for Apply(qt, objects...).
func (qt *QuantumThen) Apply(objects ...*QuantumObject) error {
	return Apply(qt, objects...)
}

func (qt *QuantumThen) NumDimension() (int, bool) {
	if qt.thenEffect == nil {
		return 0, false
	}
	return qt.thenEffect.NumDimension()
}

func (qt *QuantumThen) NumObjects() (int, bool) {
	if qt.thenEffect == nil {
		return 0, false
	}
	return qt.thenEffect.NumObjects()
}

/*
Effect emits the wrapped effect's operations controlled on the condition.

Qubit controls that must read 0 are flipped before and after the controlled
block, so the block can be controlled on 1 and the control ends up where it
started. Qudit controls are conditioned on their value directly.
*/
func (qt *QuantumThen) Effect(objects ...*QuantumObject) ([]Operation, error) {
	if qt.err != nil {
		return nil, qt.err
	}

	if qt.thenEffect == nil {
		return nil, ErrNoThenEffect
	}

	for _, ctrl := range qt.controls {
		if ctrl.Board == nil {
			return nil, fmt.Errorf("%w: control %s", ErrNotOnBoard, ctrl.Name)
		}
		if len(objects) > 0 && ctrl.Board != objects[0].Board {
			return nil, fmt.Errorf("%w: control %s", ErrMixedBoards, ctrl.Name)
		}
	}

	var flips []Operation
	values := make([]int, len(qt.controls))

	for i, cond := range qt.condition {
		values[i] = cond
		if qt.controls[i].NumStates == 2 {
			values[i] = 1
			if cond == 0 {
				flips = append(flips, X(qt.controls[i].Qid))
			}
		}
	}

	inner, err := qt.thenEffect.Effect(objects...)
	if err != nil {
		return nil, err
	}

	qids := qidsOf(qt.controls)
	ops := make([]Operation, 0, len(inner)+2*len(flips))
	ops = append(ops, flips...)
	for _, op := range inner {
		ops = append(ops, op.ControlledByValues(qids, values))
	}
	ops = append(ops, flips...)

	return ops, nil
}
