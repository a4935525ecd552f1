package rpg

import "strings"

// Direction names a way out of a location.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in the order exits are printed.
var Directions = []Direction{North, East, South, West, Up, Down}

/*
ParseDirection reads a direction, case insensitively. Prefixes are allowed,
so "e" parses as east. When a prefix matches more than one direction the
first in Directions wins. Empty input is not a direction.
*/
func ParseDirection(s string) (Direction, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return "", false
	}

	for _, d := range Directions {
		if strings.HasPrefix(string(d), lower) {
			return d, true
		}
	}
	return "", false
}

func (d Direction) valid() bool {
	for _, known := range Directions {
		if d == known {
			return true
		}
	}
	return false
}
