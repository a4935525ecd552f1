package rpg

import "errors"

var (
	ErrNoLocations        = errors.New("world has no locations")
	ErrDuplicateLocation  = errors.New("duplicate location label")
	ErrUnknownLocation    = errors.New("unknown location")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidProbability = errors.New("probability must be between 0 and 1")
	ErrWrongWorld         = errors.New("encounter belongs to another quantum world")
)
