package chess

import "errors"

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidSquare = errors.New("invalid square")
	ErrNoPiece       = errors.New("no piece on square")
	ErrOccupied      = errors.New("destination is occupied")
	ErrBlocked       = errors.New("path is blocked")
	ErrNotInLine     = errors.New("squares are not on one rank or file")
)
