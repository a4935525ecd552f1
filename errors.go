package qgame

import "errors"

var (
	ErrObjectCount      = errors.New("wrong number of objects for effect")
	ErrDimension        = errors.New("wrong object dimension for effect")
	ErrNotOnBoard       = errors.New("piece must be on a board to apply effects")
	ErrMixedBoards      = errors.New("objects are on different boards")
	ErrConditionCount   = errors.New("condition count does not match controls")
	ErrConditionRange   = errors.New("condition out of range for control")
	ErrNoThenEffect     = errors.New("quantum if has no then effect")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidObject    = errors.New("invalid quantum object")
	ErrDuplicateObject  = errors.New("object already exists in world")
	ErrUnknownObject    = errors.New("object is not part of this world")
	ErrStateTooLarge    = errors.New("state vector would exceed configured size")
	ErrNothingToUndo    = errors.New("no effects to undo")
	ErrImpossible       = errors.New("outcome has zero probability")
)
