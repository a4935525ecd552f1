package qgame

import (
	"fmt"
)

// Board accumulates the operations applied to the objects placed on it.
// Every call to Add is one undoable step.
type Board interface {
	Add(ops ...Operation) error
}

/*
Effect is a quantum operation that can be applied to quantum objects.

Effect returns the operations that implement it for the given objects.
NumDimension and NumObjects report the qid dimension and object count the
effect requires; a false second value means any is allowed.
*/
type Effect interface {
	Effect(objects ...*QuantumObject) ([]Operation, error)
	NumDimension() (int, bool)
	NumObjects() (int, bool)
}

// AnyArity can be embedded by effects that accept any number of objects of
// any dimension.
type AnyArity struct{}

func (AnyArity) NumDimension() (int, bool) { return 0, false }
func (AnyArity) NumObjects() (int, bool) { return 0, false }

// Apply verifies the objects against the effect and adds the resulting
// operations to the board of the first object.
func Apply(effect Effect, objects ...*QuantumObject) error {
	if err := verifyObjects(effect, objects); err != nil {
		return err
	}

	ops, err := effect.Effect(objects...)
	if err != nil {
		return err
	}

	return objects[0].Board.Add(ops...)
}

func verifyObjects(effect Effect, objects []*QuantumObject) error {
	if n, ok := effect.NumObjects(); ok && len(objects) != n {
		return fmt.Errorf("%w: cannot apply effect to %d qubits", ErrObjectCount, len(objects))
	}

	if len(objects) == 0 {
		return fmt.Errorf("%w: cannot apply effect to 0 qubits", ErrObjectCount)
	}

	required, checkDim := effect.NumDimension()
	board := objects[0].Board

	for _, obj := range objects {
		if checkDim && obj.NumStates != required {
			return fmt.Errorf("%w: cannot apply effect to qids of dimension %d", ErrDimension, required)
		}

		if obj.Board == nil {
			return fmt.Errorf("%w: %s", ErrNotOnBoard, obj.Name)
		}

		if obj.Board != board {
			return fmt.Errorf("%w: %s", ErrMixedBoards, obj.Name)
		}
	}

	return nil
}
