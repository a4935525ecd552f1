package qgame

import "fmt"

/*
QuantumObject is a game piece or entity backed by one simulated qid. The
object knows its dimension and, once placed in a world, the board every
effect on it is written to.
*/
type QuantumObject struct {
	Name         string
	NumStates    int
	InitialState int
	Qid          *Qid
	Board        Board
}

// ObjectOption configures a quantum object at construction.
type ObjectOption func(*QuantumObject)

// WithStates makes the object a qudit with n possible values.
func WithStates(n int) ObjectOption {
	return func(obj *QuantumObject) {
		obj.NumStates = n
	}
}

// NewQuantumObject returns an object that starts out holding initial. It is
// a qubit unless WithStates says otherwise.
func NewQuantumObject(name string, initial int, opts ...ObjectOption) (*QuantumObject, error) {
	obj := &QuantumObject{
		Name:         name,
		NumStates:    2,
		InitialState: initial,
	}

	for _, opt := range opts {
		opt(obj)
	}

	if obj.NumStates < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 states, got %d", ErrInvalidObject, name, obj.NumStates)
	}

	if initial < 0 || initial >= obj.NumStates {
		return nil, fmt.Errorf(
			"%w: initial state %d of %s outside [0, %d)",
			ErrInvalidObject, initial, name, obj.NumStates,
		)
	}

	obj.Qid = NewQid(name, obj.NumStates)
	return obj, nil
}

func (obj *QuantumObject) String() string {
	return obj.Name
}

func qidsOf(objects []*QuantumObject) []*Qid {
	out := make([]*Qid, len(objects))
	for i, obj := range objects {
		out[i] = obj.Qid
	}
	return out
}
